package tui

import (
	"fmt"

	"github.com/jsimonrichard/brp/internal/bible"
	"github.com/jsimonrichard/brp/internal/display"
	"github.com/jsimonrichard/brp/internal/progress"
	"github.com/jsimonrichard/brp/internal/stats"
)

// NodeKind distinguishes the three levels of the dashboard tree.
type NodeKind int

const (
	TestamentNode NodeKind = iota
	BookNode
	ChapterNode
)

// TreeNode is one row of the dashboard's testament/book/chapter tree,
// carrying its own computed statistics so the tree can be rendered
// without re-touching progress or bible data per frame.
type TreeNode struct {
	Kind     NodeKind
	Label    string
	Book     string
	Chapter  int
	Colour   stats.Colour
	Counts   stats.Counts
	Children []*TreeNode
}

// Text is the node's label suffixed with its formatted read-count string,
// e.g. "John (2x + 40%)".
func (n *TreeNode) Text() string {
	if n.Kind == TestamentNode {
		return n.Label
	}
	return fmt.Sprintf("%s (%s)", n.Label, display.FormatCounts(n.Counts))
}

// BuildDashboardTree builds the Old/New Testament -> book -> chapter tree,
// each node carrying its computed read-count statistics and tri-state
// colour.
func BuildDashboardTree(structure *bible.Structure, p *progress.ReadingProgress) []*TreeNode {
	return []*TreeNode{
		buildTestament("Old Testament", structure.OT, p),
		buildTestament("New Testament", structure.NT, p),
	}
}

func buildTestament(label string, books []bible.Book, p *progress.ReadingProgress) *TreeNode {
	testamentMin := stats.TestamentCounts(p, books)

	children := make([]*TreeNode, 0, len(books))
	for _, b := range books {
		children = append(children, buildBook(b, p, testamentMin))
	}

	return &TreeNode{
		Kind:     TestamentNode,
		Label:    label,
		Counts:   stats.Counts{Min: testamentMin},
		Children: children,
	}
}

func buildBook(b bible.Book, p *progress.ReadingProgress, testamentMin uint32) *TreeNode {
	var bookVerseCounts []uint32
	chapterNodes := make([]*TreeNode, 0, b.Len())
	chapterColours := make([]stats.Colour, 0, b.Len())

	bookCounts := stats.BookCounts(p, b.Name, b)

	for ch := 1; ch <= b.Len(); ch++ {
		verseCounts := stats.VerseCounts(p, b.Name, ch, b.Verses(ch))
		bookVerseCounts = append(bookVerseCounts, verseCounts...)

		chapterCounts := stats.ChapterCounts(p, b.Name, ch, b.Verses(ch))
		colour := stats.ChapterColour(chapterCounts.Min, bookCounts.Min, verseCounts)
		chapterColours = append(chapterColours, colour)

		chapterNodes = append(chapterNodes, &TreeNode{
			Kind:    ChapterNode,
			Label:   fmt.Sprintf("Chapter %d", ch),
			Book:    b.Name,
			Chapter: ch,
			Colour:  colour,
			Counts:  chapterCounts,
		})
	}

	bookColour := stats.BookColour(chapterColours, bookCounts.Min, testamentMin, bookVerseCounts)

	return &TreeNode{
		Kind:     BookNode,
		Label:    b.Name,
		Book:     b.Name,
		Colour:   bookColour,
		Counts:   bookCounts,
		Children: chapterNodes,
	}
}
