package tui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jsimonrichard/brp/internal/apperr"
	"github.com/jsimonrichard/brp/internal/bible"
	"github.com/jsimonrichard/brp/internal/passage"
	"github.com/jsimonrichard/brp/internal/progress"
)

// RecordFocus names which input field of the record screen has the
// cursor.
type RecordFocus int

const (
	FocusBook RecordFocus = iota
	FocusChapter
	FocusVerse
)

// Record is the "quick add" screen: search for a book, type a chapter
// and an optional verse range, and accumulate a single read onto each
// matched verse.
type Record struct {
	structure *bible.Structure

	BookSearch  string
	BookMatches []string
	BookIndex   int
	Chapter     string
	Verse       string
	Error       string
	Focus       RecordFocus
}

// NewRecord starts a fresh record screen with every book as a candidate
// match.
func NewRecord(structure *bible.Structure) *Record {
	return &Record{
		structure:   structure,
		BookMatches: AllBookNames(structure),
	}
}

func (r *Record) recomputeMatches() {
	r.BookMatches = MatchBooks(AllBookNames(r.structure), r.BookSearch)
	r.BookIndex = 0
}

// HandleKey advances focus, edits the focused field, or returns Cancel /
// AddReading when the user is done.
func (r *Record) HandleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEsc:
		return Cancel
	case tcell.KeyTab:
		r.Focus = (r.Focus + 1) % 3
		r.Error = ""
		return None
	case tcell.KeyBacktab:
		r.Focus = (r.Focus + 2) % 3
		r.Error = ""
		return None
	case tcell.KeyUp:
		if r.Focus == FocusBook && r.BookIndex > 0 {
			r.BookIndex--
		}
		return None
	case tcell.KeyDown:
		if r.Focus == FocusBook && r.BookIndex < len(r.BookMatches)-1 {
			r.BookIndex++
		}
		return None
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		r.backspace()
		r.Error = ""
		return None
	case tcell.KeyEnter:
		return r.handleEnter()
	}

	if ch := ev.Rune(); ch != 0 && ch >= 0x20 {
		r.typeRune(ch)
		r.Error = ""
	}
	return None
}

func (r *Record) backspace() {
	switch r.Focus {
	case FocusBook:
		r.BookSearch = trimLastRune(r.BookSearch)
		r.recomputeMatches()
	case FocusChapter:
		r.Chapter = trimLastRune(r.Chapter)
	case FocusVerse:
		r.Verse = trimLastRune(r.Verse)
	}
}

func (r *Record) typeRune(ch rune) {
	switch r.Focus {
	case FocusBook:
		r.BookSearch += string(ch)
		r.recomputeMatches()
	case FocusChapter:
		if ch >= '0' && ch <= '9' {
			r.Chapter += string(ch)
		}
	case FocusVerse:
		if (ch >= '0' && ch <= '9') || ch == '-' || ch == ',' || ch == ' ' {
			r.Verse += string(ch)
		}
	}
}

func (r *Record) handleEnter() Action {
	switch r.Focus {
	case FocusBook:
		if len(r.BookMatches) > 0 {
			r.BookSearch = r.BookMatches[r.BookIndex]
			r.Focus = FocusChapter
			r.recomputeMatches()
		}
		return None
	case FocusChapter:
		r.Focus = FocusVerse
		return None
	default:
		if len(r.BookMatches) == 0 {
			r.Error = "Please select a book first"
			return None
		}
		return AddReading
	}
}

// AddReading parses the current fields and marks every matched verse as
// read, accumulating onto any existing count. On success the chapter and
// verse fields are cleared for the next entry.
func (r *Record) AddReading(p *progress.ReadingProgress) error {
	if len(r.BookMatches) == 0 {
		return apperr.NewInputError("please select a book first")
	}
	book := r.BookMatches[r.BookIndex]

	chapter, err := strconv.Atoi(strings.TrimSpace(r.Chapter))
	if err != nil {
		return apperr.NewInputError("invalid chapter: %q", r.Chapter)
	}

	b, ok := r.structure.Book(book)
	if !ok {
		return apperr.NewInputError("book %q not found", book)
	}
	if chapter < 1 || chapter > b.Len() {
		return apperr.NewInputError("chapter %d doesn't exist (max: %d)", chapter, b.Len())
	}
	maxVerse := b.Verses(chapter)

	ranges, err := passage.ParseVerseRanges(r.Verse, maxVerse)
	if err != nil {
		return err
	}

	for _, vr := range ranges {
		for v := vr.Start; v <= vr.End; v++ {
			p.MarkRead(book, progress.BookRef{Chapter: uint32(chapter), Verse: uint32(v)})
		}
	}

	r.Chapter = ""
	r.Verse = ""
	r.Error = ""
	r.Focus = FocusChapter
	return nil
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

// Render fills the match list with the current book matches and selects
// the highlighted one. The form argument is not used: field values are
// not drawn. A thin, untested adapter over the state above.
func (r *Record) Render(form *tview.Form, matches *tview.List) {
	matches.Clear()
	for _, name := range r.BookMatches {
		matches.AddItem(name, "", 0, nil)
	}
	if len(r.BookMatches) > 0 {
		matches.SetCurrentItem(r.BookIndex)
	}
}
