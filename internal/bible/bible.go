// Package bible holds the static canonical structure of the Bible: the
// ordered list of books in each testament and, for each book, the maximum
// verse number of every chapter.
package bible

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed bible_structure.json
var structureJSON []byte

// Book is one book of the canon: its name and the maximum verse number of
// each of its chapters, in order (Chapters[i] is the length of chapter i+1).
type Book struct {
	Name     string `json:"name"`
	Chapters []int  `json:"chapters"`
}

// Len returns the number of chapters in the book.
func (b Book) Len() int {
	return len(b.Chapters)
}

// Verses returns the maximum verse number of the given 1-indexed chapter,
// or 0 if the chapter does not exist.
func (b Book) Verses(chapter int) int {
	if chapter < 1 || chapter > len(b.Chapters) {
		return 0
	}
	return b.Chapters[chapter-1]
}

// Structure is the canonical Old and New Testament book listing, each an
// ordered sequence of books. Book order is canonically significant and is
// preserved exactly as it appears in the embedded data.
type Structure struct {
	OT []Book `json:"ot"`
	NT []Book `json:"nt"`
}

var (
	once      sync.Once
	structure *Structure
)

// Get returns the canonical Bible structure, parsing the embedded JSON on
// first use. Safe for concurrent use; repeated calls return the same value.
func Get() *Structure {
	once.Do(func() {
		var s Structure
		if err := json.Unmarshal(structureJSON, &s); err != nil {
			panic(fmt.Sprintf("bible: embedded structure is malformed: %v", err))
		}
		structure = &s
	})
	return structure
}

// Book looks up a book by name in either testament.
func (s *Structure) Book(name string) (Book, bool) {
	for _, b := range s.OT {
		if b.Name == name {
			return b, true
		}
	}
	for _, b := range s.NT {
		if b.Name == name {
			return b, true
		}
	}
	return Book{}, false
}

// Books returns the Old Testament books followed by the New Testament
// books, in canonical order.
func (s *Structure) Books() []Book {
	out := make([]Book, 0, len(s.OT)+len(s.NT))
	out = append(out, s.OT...)
	out = append(out, s.NT...)
	return out
}

// Testament identifies which half of the canon a book belongs to.
type Testament int

const (
	OldTestament Testament = iota
	NewTestament
)

// TestamentOf reports which testament a book belongs to.
func (s *Structure) TestamentOf(name string) (Testament, bool) {
	for _, b := range s.OT {
		if b.Name == name {
			return OldTestament, true
		}
	}
	for _, b := range s.NT {
		if b.Name == name {
			return NewTestament, true
		}
	}
	return 0, false
}
