package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/jsimonrichard/brp/internal/progress"
)

func key(k tcell.Key, ch rune) *tcell.EventKey {
	return tcell.NewEventKey(k, ch, tcell.ModNone)
}

func TestDashboardHandleKeyQuit(t *testing.T) {
	d := NewDashboard(testStructure(t), progress.New())
	if a := d.HandleKey(key(tcell.KeyRune, 'q')); a != Quit {
		t.Errorf("got %v, want Quit", a)
	}
}

func TestDashboardHandleKeyStartRecord(t *testing.T) {
	d := NewDashboard(testStructure(t), progress.New())
	if a := d.HandleKey(key(tcell.KeyRune, 'r')); a != StartRecord {
		t.Errorf("got %v, want StartRecord", a)
	}
}

func TestDashboardHandleKeyStartManualAdd(t *testing.T) {
	d := NewDashboard(testStructure(t), progress.New())
	if a := d.HandleKey(key(tcell.KeyRune, 'm')); a != StartManualAdd {
		t.Errorf("got %v, want StartManualAdd", a)
	}
}

func TestDashboardArrowDownMovesSelection(t *testing.T) {
	d := NewDashboard(testStructure(t), progress.New())
	start := d.Selected
	d.HandleKey(key(tcell.KeyDown, 0))
	if d.Selected != start+1 {
		t.Errorf("got selected=%d, want %d", d.Selected, start+1)
	}
}

func TestDashboardArrowUpAtTopStaysPut(t *testing.T) {
	d := NewDashboard(testStructure(t), progress.New())
	d.HandleKey(key(tcell.KeyUp, 0))
	if d.Selected != 0 {
		t.Errorf("got selected=%d, want 0", d.Selected)
	}
}

func TestDashboardCollapseHidesChildren(t *testing.T) {
	d := NewDashboard(testStructure(t), progress.New())
	before := len(d.Rows())

	d.HandleKey(key(tcell.KeyLeft, 0)) // collapse Old Testament (row 0)
	after := len(d.Rows())
	if after >= before {
		t.Errorf("expected fewer rows after collapsing, got %d (was %d)", after, before)
	}
}

func TestDashboardExpandRestoresChildren(t *testing.T) {
	d := NewDashboard(testStructure(t), progress.New())
	full := len(d.Rows())

	d.HandleKey(key(tcell.KeyLeft, 0))
	d.HandleKey(key(tcell.KeyRight, 0))
	if len(d.Rows()) != full {
		t.Errorf("got %d rows after collapse+expand, want %d", len(d.Rows()), full)
	}
}

func TestDashboardSelectedNodeOnEmptyTree(t *testing.T) {
	d := &Dashboard{expanded: map[*TreeNode]bool{}}
	if n := d.SelectedNode(); n != nil {
		t.Errorf("expected nil selected node, got %+v", n)
	}
}
