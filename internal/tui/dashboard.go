package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jsimonrichard/brp/internal/bible"
	"github.com/jsimonrichard/brp/internal/progress"
	"github.com/jsimonrichard/brp/internal/stats"
)

// row is one flattened, currently-visible tree node plus its indent
// depth, recomputed whenever a node is expanded or collapsed.
type row struct {
	node  *TreeNode
	depth int
}

// Dashboard is the main screen: the Old/New Testament -> book -> chapter
// tree, navigable with the arrow keys and expand/collapse.
type Dashboard struct {
	Roots    []*TreeNode
	expanded map[*TreeNode]bool
	Selected int

	rows []row
}

// NewDashboard builds the tree from the current bible structure and
// reading progress, with both testaments expanded and the first row
// selected.
func NewDashboard(structure *bible.Structure, p *progress.ReadingProgress) *Dashboard {
	d := &Dashboard{
		Roots:    BuildDashboardTree(structure, p),
		expanded: make(map[*TreeNode]bool),
	}
	for _, r := range d.Roots {
		d.expanded[r] = true
	}
	d.refresh()
	return d
}

func (d *Dashboard) refresh() {
	d.rows = d.rows[:0]
	var walk func(n *TreeNode, depth int)
	walk = func(n *TreeNode, depth int) {
		d.rows = append(d.rows, row{node: n, depth: depth})
		if d.expanded[n] {
			for _, c := range n.Children {
				walk(c, depth+1)
			}
		}
	}
	for _, r := range d.Roots {
		walk(r, 0)
	}
	if d.Selected >= len(d.rows) {
		d.Selected = len(d.rows) - 1
	}
	if d.Selected < 0 {
		d.Selected = 0
	}
}

// Rows returns the currently visible rows, in display order.
func (d *Dashboard) Rows() []row { return d.rows }

// SelectedNode returns the node under the cursor, or nil if the tree is
// empty.
func (d *Dashboard) SelectedNode() *TreeNode {
	if d.Selected < 0 || d.Selected >= len(d.rows) {
		return nil
	}
	return d.rows[d.Selected].node
}

// HandleKey advances the cursor, expands/collapses the selected node, or
// returns the action for the App to perform (quit, start recording, or
// start a manual overwrite).
func (d *Dashboard) HandleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEsc:
		return Quit
	case tcell.KeyUp:
		if d.Selected > 0 {
			d.Selected--
		}
		return None
	case tcell.KeyDown:
		if d.Selected < len(d.rows)-1 {
			d.Selected++
		}
		return None
	case tcell.KeyLeft:
		if n := d.SelectedNode(); n != nil {
			d.expanded[n] = false
			d.refresh()
		}
		return None
	case tcell.KeyRight, tcell.KeyEnter:
		if n := d.SelectedNode(); n != nil && len(n.Children) > 0 {
			d.expanded[n] = !d.expanded[n]
			d.refresh()
		}
		return None
	}

	switch ev.Rune() {
	case 'q':
		return Quit
	case 'r':
		return StartRecord
	case 'm':
		return StartManualAdd
	case ' ':
		if n := d.SelectedNode(); n != nil && len(n.Children) > 0 {
			d.expanded[n] = !d.expanded[n]
			d.refresh()
		}
		return None
	}
	return None
}

func colourAttr(c stats.Colour) tcell.Color {
	switch c {
	case stats.Green:
		return tcell.ColorGreen
	case stats.Yellow:
		return tcell.ColorYellow
	default:
		return tcell.ColorWhite
	}
}

// Render populates a tview.TreeView with the dashboard's current state.
// It is a thin, untested adapter over the pure tree/cursor logic above.
func (d *Dashboard) Render(view *tview.TreeView) {
	nodesByTree := make(map[*TreeNode]*tview.TreeNode, len(d.rows))
	var build func(n *TreeNode) *tview.TreeNode
	build = func(n *TreeNode) *tview.TreeNode {
		tn := tview.NewTreeNode(n.Text()).SetColor(colourAttr(n.Colour))
		tn.SetExpanded(d.expanded[n])
		nodesByTree[n] = tn
		for _, c := range n.Children {
			tn.AddChild(build(c))
		}
		return tn
	}

	root := tview.NewTreeNode("Bible")
	for _, r := range d.Roots {
		root.AddChild(build(r))
	}
	view.SetRoot(root).SetCurrentNode(root)
	if n := d.SelectedNode(); n != nil {
		if tn, ok := nodesByTree[n]; ok {
			view.SetCurrentNode(tn)
		}
	}
}
