// Package stats computes per-chapter, per-book, and per-testament
// read-count statistics and the tri-state colouring used to highlight
// under-read passages in the dashboard.
package stats

import (
	"github.com/jsimonrichard/brp/internal/bible"
	"github.com/jsimonrichard/brp/internal/progress"
)

// Counts is a (min, more, total) triple: the minimum read count across a
// scope's verses, how many verses exceed that minimum, and the verse
// count of the scope. The zero value (0, 0, 0) represents an entirely
// unread scope.
type Counts struct {
	Min   uint32
	More  int
	Total int
}

// Colour is the tri-state highlight applied to a chapter or book.
type Colour int

const (
	White Colour = iota
	Yellow
	Green
)

// VerseCounts returns the read count of every verse in a chapter, 0 for
// verses never read. Index i holds the count for verse i+1.
func VerseCounts(p *progress.ReadingProgress, book string, chapter int, maxVerse int) []uint32 {
	counts := make([]uint32, maxVerse)
	for v := 1; v <= maxVerse; v++ {
		counts[v-1] = p.ReadCount(book, progress.BookRef{Chapter: uint32(chapter), Verse: uint32(v)})
	}
	return counts
}

// countsOf computes the (min, more, total) triple over a flat list of
// per-verse read counts. An empty scope, or a scope where every verse
// count is zero, reports (0, 0, 0).
func countsOf(verseCounts []uint32) Counts {
	total := len(verseCounts)
	if total == 0 {
		return Counts{}
	}
	min := verseCounts[0]
	for _, c := range verseCounts[1:] {
		if c < min {
			min = c
		}
	}
	more := 0
	for _, c := range verseCounts {
		if c > min {
			more++
		}
	}
	if min == 0 && more == 0 {
		return Counts{}
	}
	return Counts{Min: min, More: more, Total: total}
}

// ChapterCounts computes chapter stats for (book, chapter).
func ChapterCounts(p *progress.ReadingProgress, book string, chapter int, maxVerse int) Counts {
	return countsOf(VerseCounts(p, book, chapter, maxVerse))
}

// BookCounts computes book stats by concatenating the verse counts of
// every chapter in b.
func BookCounts(p *progress.ReadingProgress, book string, b bible.Book) Counts {
	var all []uint32
	for ch := 1; ch <= b.Len(); ch++ {
		all = append(all, VerseCounts(p, book, ch, b.Verses(ch))...)
	}
	return countsOf(all)
}

// TestamentCounts computes the minimum read count across every verse of
// every book in books; 0 if books is empty or entirely unread.
func TestamentCounts(p *progress.ReadingProgress, books []bible.Book) uint32 {
	var min uint32
	seen := false
	for _, b := range books {
		for ch := 1; ch <= b.Len(); ch++ {
			for _, c := range VerseCounts(p, b.Name, ch, b.Verses(ch)) {
				if !seen || c < min {
					min = c
					seen = true
				}
			}
		}
	}
	return min
}

// ChapterColour computes the tri-state colour of a chapter relative to its
// book's minimum read count.
func ChapterColour(chapterMin uint32, bookMin uint32, verseCounts []uint32) Colour {
	if chapterMin == bookMin {
		return White
	}
	for _, c := range verseCounts {
		if c >= bookMin+1 {
			return Green
		}
	}
	return Yellow
}

// BookColour computes the tri-state colour of a book. chapterColours holds
// the already-computed colour of every chapter in the book, in order.
// bookMin and testamentMin are the book's and its testament's minimum read
// counts; bookVerseCounts is the flattened verse-count list for the whole
// book, used only when no chapter is green and the chapter rule must be
// applied one level up.
func BookColour(chapterColours []Colour, bookMin uint32, testamentMin uint32, bookVerseCounts []uint32) Colour {
	if len(chapterColours) == 0 {
		return White
	}
	allGreen := true
	anyGreen := false
	for _, c := range chapterColours {
		if c == Green {
			anyGreen = true
		} else {
			allGreen = false
		}
	}
	if allGreen {
		return Green
	}
	if anyGreen {
		return Yellow
	}
	return ChapterColour(bookMin, testamentMin, bookVerseCounts)
}
