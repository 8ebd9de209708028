// Package tui implements the terminal dashboard: a navigable tree of
// books and chapters coloured by how evenly they've been read, plus
// screens for recording a quick read and for manually overwriting a
// read count and date.
package tui

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jsimonrichard/brp/internal/apperr"
	"github.com/jsimonrichard/brp/internal/bible"
	"github.com/jsimonrichard/brp/internal/progress"
	"github.com/jsimonrichard/brp/internal/store"
)

type screen int

const (
	screenDashboard screen = iota
	screenRecord
	screenManualAdd
)

const (
	pageDashboard = "dashboard"
	pageRecord    = "record"
	pageManual    = "manual"
)

// App wires the dashboard, record, and manual-add screens together and
// persists progress to disk at every point the original saved: on quit,
// and after successfully adding a reading.
type App struct {
	application *tview.Application
	pages       *tview.Pages

	structure    *bible.Structure
	progress     *progress.ReadingProgress
	progressPath string

	current   screen
	dashboard *Dashboard
	record    *Record
	manual    *ManualAdd

	tree    *tview.TreeView
	recList *tview.List
	manList *tview.List
	status  *tview.TextView
}

// NewApp loads progress from progressPath (an empty ReadingProgress if
// the file doesn't exist yet) and builds the initial dashboard screen. A
// corrupt progress file is logged and treated as empty rather than
// failing startup; the bible structure itself is expected to be valid
// and any failure there is fatal (see bible.Get).
func NewApp(progressPath string) (*App, error) {
	structure := bible.Get()
	prog, err := store.Load(progressPath)
	if err != nil {
		if !apperr.IsParse(err) {
			return nil, err
		}
		log.Printf("progress file %s is corrupt, starting fresh: %v", progressPath, err)
		prog = progress.New()
	}

	a := &App{
		application:  tview.NewApplication(),
		structure:    structure,
		progress:     prog,
		progressPath: progressPath,
		dashboard:    NewDashboard(structure, prog),
		status:       tview.NewTextView(),
	}
	a.build()
	return a, nil
}

func (a *App) build() {
	a.tree = tview.NewTreeView().SetGraphics(true)
	a.tree.SetBorder(true).SetTitle("Bible Reading Progress (↑↓←→ navigate, r: record, m: manual add, q: quit)")
	a.dashboard.Render(a.tree)

	a.recList = tview.NewList().ShowSecondaryText(false)
	recForm := tview.NewForm()
	recPage := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(recForm, 0, 1, true).
		AddItem(a.recList, 8, 0, false)

	a.manList = tview.NewList().ShowSecondaryText(false)
	manForm := tview.NewForm()
	manPage := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(manForm, 0, 1, true).
		AddItem(a.manList, 8, 0, false)

	a.pages = tview.NewPages().
		AddPage(pageDashboard, a.tree, true, true).
		AddPage(pageRecord, recPage, true, false).
		AddPage(pageManual, manPage, true, false)

	a.application.SetInputCapture(a.handleKey)
	a.application.SetRoot(a.pages, true)
}

func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	var action Action
	switch a.current {
	case screenDashboard:
		action = a.dashboard.HandleKey(ev)
		a.dashboard.Render(a.tree)
	case screenRecord:
		action = a.record.HandleKey(ev)
		a.record.Render(nil, a.recList)
	case screenManualAdd:
		action = a.manual.HandleKey(ev)
		a.manual.Render(nil, a.manList)
	}
	a.dispatch(action)
	return nil
}

func (a *App) dispatch(action Action) {
	switch action {
	case None:
		return
	case Quit:
		a.quit()
	case StartRecord:
		a.record = NewRecord(a.structure)
		a.current = screenRecord
		a.pages.SwitchToPage(pageRecord)
	case StartManualAdd:
		a.manual = NewManualAdd(a.structure)
		a.current = screenManualAdd
		a.pages.SwitchToPage(pageManual)
	case Cancel:
		a.returnToDashboard()
	case AddReading:
		a.addReading()
	}
}

func (a *App) addReading() {
	var err error
	switch a.current {
	case screenRecord:
		err = a.record.AddReading(a.progress)
	case screenManualAdd:
		err = a.manual.AddReading(a.progress)
	}
	if err != nil {
		switch a.current {
		case screenRecord:
			a.record.Error = err.Error()
		case screenManualAdd:
			a.manual.Error = err.Error()
		}
		return
	}
	if err := store.Save(a.progressPath, a.progress); err != nil {
		a.status.SetText(err.Error())
		return
	}
	a.returnToDashboard()
}

func (a *App) returnToDashboard() {
	a.dashboard = NewDashboard(a.structure, a.progress)
	a.dashboard.Render(a.tree)
	a.current = screenDashboard
	a.pages.SwitchToPage(pageDashboard)
}

func (a *App) quit() {
	if err := store.Save(a.progressPath, a.progress); err != nil {
		a.status.SetText(err.Error())
	}
	a.application.Stop()
}

// Run starts the terminal event loop. It blocks until the user quits.
func (a *App) Run() error {
	return a.application.Run()
}
