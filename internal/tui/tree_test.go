package tui

import (
	"testing"

	"github.com/jsimonrichard/brp/internal/progress"
	"github.com/jsimonrichard/brp/internal/stats"
)

func TestBuildDashboardTreeHasBothTestaments(t *testing.T) {
	structure := testStructure(t)
	roots := BuildDashboardTree(structure, progress.New())
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	if roots[0].Label != "Old Testament" || roots[1].Label != "New Testament" {
		t.Errorf("got labels %q, %q", roots[0].Label, roots[1].Label)
	}
}

func TestBuildDashboardTreeUnreadIsAllWhite(t *testing.T) {
	structure := testStructure(t)
	roots := BuildDashboardTree(structure, progress.New())
	for _, testament := range roots {
		for _, book := range testament.Children {
			if book.Colour != stats.White {
				t.Errorf("unread book %q has colour %v, want White", book.Label, book.Colour)
			}
			for _, ch := range book.Children {
				if ch.Colour != stats.White {
					t.Errorf("unread chapter %q of %q has colour %v, want White", ch.Label, book.Label, ch.Colour)
				}
			}
		}
	}
}

func TestBuildDashboardTreeBookChildCountMatchesChapters(t *testing.T) {
	structure := testStructure(t)
	roots := BuildDashboardTree(structure, progress.New())
	for _, b := range roots[0].Children {
		if b.Label == "Genesis" {
			if len(b.Children) != 50 {
				t.Errorf("Genesis has %d chapter nodes, want 50", len(b.Children))
			}
			return
		}
	}
	t.Fatal("Genesis not found in Old Testament tree")
}

func TestBuildDashboardTreeFullyReadBookHasMinOne(t *testing.T) {
	structure := testStructure(t)
	p := progress.New()
	b, ok := structure.Book("John")
	if !ok {
		t.Fatal("John not found")
	}
	// Mark every verse of every chapter in John as read once.
	for ch := 1; ch <= b.Len(); ch++ {
		maxVerse := b.Verses(ch)
		for v := 1; v <= maxVerse; v++ {
			p.MarkRead("John", progress.BookRef{Chapter: uint32(ch), Verse: uint32(v)})
		}
	}

	roots := BuildDashboardTree(structure, p)
	var john *TreeNode
	for _, bk := range roots[1].Children {
		if bk.Label == "John" {
			john = bk
		}
	}
	if john == nil {
		t.Fatal("John not found in New Testament tree")
	}
	if john.Counts.Min != 1 {
		t.Errorf("John min read count = %d, want 1", john.Counts.Min)
	}
}

func TestTreeNodeTextIncludesFormattedCounts(t *testing.T) {
	n := &TreeNode{Kind: ChapterNode, Label: "Chapter 1", Counts: stats.Counts{}}
	text := n.Text()
	if text != "Chapter 1 (0%)" {
		t.Errorf("got %q, want %q", text, "Chapter 1 (0%)")
	}
}

func TestTreeNodeTextTestamentHasNoSuffix(t *testing.T) {
	n := &TreeNode{Kind: TestamentNode, Label: "Old Testament"}
	if n.Text() != "Old Testament" {
		t.Errorf("got %q", n.Text())
	}
}
