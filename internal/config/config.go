// Package config loads and writes the application's YAML configuration
// file and resolves the effective path to the reading-progress file it
// points at.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/jsimonrichard/brp/internal/apperr"
)

const fileName = "bible-reading-progress.yaml"

// Version is stamped at build time (-ldflags "-X .../config.Version=...")
// by release builds; it stays "dev" for `go run`/`go build` invocations
// during development, which is how ResolveProgressPath tells the two
// apart.
var Version = "dev"

func isDevBuild() bool { return Version == "dev" }

// Config is the on-disk configuration document.
type Config struct {
	// ProgressPath is where the reading-progress YAML file lives. Empty
	// means "use the default for this build".
	ProgressPath string `yaml:"progress_path,omitempty"`
}

// Path returns the location of the config file within the OS config
// directory, creating the directory if necessary.
func Path() (string, error) {
	path, err := xdg.ConfigFile(fileName)
	if err != nil {
		return "", apperr.NewPathError(fileName, err)
	}
	return path, nil
}

// Load reads the config file, writing and returning a default config if
// it does not yet exist.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Config{}
		if werr := Save(cfg); werr != nil {
			return Config{}, werr
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, apperr.NewIoError("read config file", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, apperr.NewParseError(path, err)
	}
	return cfg, nil
}

// Save writes cfg to the config file, creating parent directories as
// needed.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return apperr.NewIoError("encode config", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperr.NewPathError(filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperr.NewIoError("write config file", err)
	}
	return nil
}

// ResolveProgressPath computes the absolute path to the reading-progress
// file given a config and the config file's own directory (needed to
// resolve relative progress_path values).
func ResolveProgressPath(cfg Config, configDir string) (string, error) {
	if cfg.ProgressPath == "" {
		return defaultProgressPath()
	}
	return expandPath(cfg.ProgressPath, configDir)
}

func defaultProgressPath() (string, error) {
	if isDevBuild() {
		return filepath.Abs("reading_progress.yaml")
	}
	dir := filepath.Join(xdg.DataHome, "bible-reading-progress")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperr.NewPathError(dir, err)
	}
	return filepath.Join(dir, "reading_progress.yaml"), nil
}

// expandPath applies the documented progress_path resolution rules: `~`
// and `~/` expand to the home directory, relative paths resolve against
// configDir, and absolute paths are used as-is.
func expandPath(path string, configDir string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return "", apperr.NewPathError(path, err)
		}
		return expanded, nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Join(configDir, path), nil
}
