package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jsimonrichard/brp/internal/config"
	"github.com/jsimonrichard/brp/internal/tui"
)

func main() {
	log.SetFlags(0)

	showConfig := false

	root := &cobra.Command{
		Use:   "brp",
		Short: "Track your Bible reading progress from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showConfig {
				return runShowConfig()
			}
			return runTUI()
		},
	}
	root.Flags().BoolVar(&showConfig, "show-config", false, "print the config file path and the resolved progress file path, then exit")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runShowConfig() error {
	configPath, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	progressPath, err := config.ResolveProgressPath(cfg, filepath.Dir(configPath))
	if err != nil {
		return err
	}

	fmt.Printf("config file:   %s\n", configPath)
	fmt.Printf("progress file: %s\n", progressPath)
	return nil
}

func runTUI() error {
	configPath, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	progressPath, err := config.ResolveProgressPath(cfg, filepath.Dir(configPath))
	if err != nil {
		return err
	}

	app, err := tui.NewApp(progressPath)
	if err != nil {
		return err
	}
	return app.Run()
}
