package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jsimonrichard/brp/internal/apperr"
	"github.com/jsimonrichard/brp/internal/bible"
	"github.com/jsimonrichard/brp/internal/passage"
	"github.com/jsimonrichard/brp/internal/progress"
)

// ManualFocus names which input field of the manual-add screen has the
// cursor.
type ManualFocus int

const (
	ManualFocusBook ManualFocus = iota
	ManualFocusChapter
	ManualFocusVerseStart
	ManualFocusVerseEnd
	ManualFocusReadCount
	ManualFocusDate
)

// ManualAdd is the overwrite screen: set an explicit read count and date
// for a book, a single chapter, or a chapter range, discarding whatever
// was recorded there before. Leaving the chapter field empty targets the
// whole book and requires confirmation.
type ManualAdd struct {
	structure *bible.Structure

	BookSearch  string
	BookMatches []string
	BookIndex   int
	Chapter     string
	VerseStart  string
	VerseEnd    string
	ReadCount   string
	Date        string
	Error       string
	Focus       ManualFocus

	AwaitingConfirm bool
}

// NewManualAdd starts a fresh manual-add screen with every book as a
// candidate match.
func NewManualAdd(structure *bible.Structure) *ManualAdd {
	return &ManualAdd{
		structure:   structure,
		BookMatches: AllBookNames(structure),
	}
}

func (m *ManualAdd) recomputeMatches() {
	m.BookMatches = MatchBooks(AllBookNames(m.structure), m.BookSearch)
	m.BookIndex = 0
}

func (m *ManualAdd) isChapterRange() bool {
	return strings.Contains(m.Chapter, "-")
}

// activeFocuses lists, in tab order, the fields currently reachable:
// VerseEnd only appears once the chapter field names a range.
func (m *ManualAdd) activeFocuses() []ManualFocus {
	if m.isChapterRange() {
		return []ManualFocus{ManualFocusBook, ManualFocusChapter, ManualFocusVerseStart, ManualFocusVerseEnd, ManualFocusReadCount, ManualFocusDate}
	}
	return []ManualFocus{ManualFocusBook, ManualFocusChapter, ManualFocusVerseStart, ManualFocusReadCount, ManualFocusDate}
}

func (m *ManualAdd) focusIndex() int {
	for i, f := range m.activeFocuses() {
		if f == m.Focus {
			return i
		}
	}
	return 0
}

// HandleKey advances focus, edits the focused field, or returns Cancel /
// AddReading when the user is done. A pending whole-book confirmation
// intercepts every key until it is accepted (Enter) or declined (Esc).
func (m *ManualAdd) HandleKey(ev *tcell.EventKey) Action {
	if m.AwaitingConfirm {
		switch ev.Key() {
		case tcell.KeyEnter:
			m.AwaitingConfirm = false
			if len(m.BookMatches) == 0 {
				m.Error = "Please select a book first"
				return None
			}
			return AddReading
		case tcell.KeyEsc:
			m.AwaitingConfirm = false
			return None
		}
		return None
	}

	switch ev.Key() {
	case tcell.KeyEsc:
		return Cancel
	case tcell.KeyTab:
		fields := m.activeFocuses()
		m.Focus = fields[(m.focusIndex()+1)%len(fields)]
		m.Error = ""
		return None
	case tcell.KeyBacktab:
		fields := m.activeFocuses()
		m.Focus = fields[(m.focusIndex()-1+len(fields))%len(fields)]
		m.Error = ""
		return None
	case tcell.KeyUp:
		if m.Focus == ManualFocusBook && m.BookIndex > 0 {
			m.BookIndex--
		}
		return None
	case tcell.KeyDown:
		if m.Focus == ManualFocusBook && m.BookIndex < len(m.BookMatches)-1 {
			m.BookIndex++
		}
		return None
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		m.backspace()
		m.Error = ""
		return None
	case tcell.KeyEnter:
		return m.handleEnter()
	}

	if ch := ev.Rune(); ch != 0 && ch >= 0x20 {
		m.typeRune(ch)
		m.Error = ""
	}
	return None
}

func (m *ManualAdd) backspace() {
	switch m.Focus {
	case ManualFocusBook:
		m.BookSearch = trimLastRune(m.BookSearch)
		m.recomputeMatches()
	case ManualFocusChapter:
		m.Chapter = trimLastRune(m.Chapter)
	case ManualFocusVerseStart:
		m.VerseStart = trimLastRune(m.VerseStart)
	case ManualFocusVerseEnd:
		m.VerseEnd = trimLastRune(m.VerseEnd)
	case ManualFocusReadCount:
		m.ReadCount = trimLastRune(m.ReadCount)
	case ManualFocusDate:
		m.Date = trimLastRune(m.Date)
	}
}

func (m *ManualAdd) typeRune(ch rune) {
	switch m.Focus {
	case ManualFocusBook:
		m.BookSearch += string(ch)
		m.recomputeMatches()
	case ManualFocusChapter:
		if (ch >= '0' && ch <= '9') || ch == '-' {
			m.Chapter += string(ch)
		}
	case ManualFocusVerseStart:
		if (ch >= '0' && ch <= '9') || ch == '-' || ch == ',' || ch == ' ' {
			m.VerseStart += string(ch)
		}
	case ManualFocusVerseEnd:
		if (ch >= '0' && ch <= '9') || ch == '-' || ch == ',' || ch == ' ' {
			m.VerseEnd += string(ch)
		}
	case ManualFocusReadCount:
		if ch >= '0' && ch <= '9' {
			m.ReadCount += string(ch)
		}
	case ManualFocusDate:
		if (ch >= '0' && ch <= '9') || ch == '-' {
			m.Date += string(ch)
		}
	}
}

func (m *ManualAdd) handleEnter() Action {
	if m.Focus == ManualFocusBook {
		if len(m.BookMatches) > 0 {
			m.BookSearch = m.BookMatches[m.BookIndex]
			m.Focus = ManualFocusChapter
			m.recomputeMatches()
		}
		return None
	}
	fields := m.activeFocuses()
	if m.focusIndex() != len(fields)-1 {
		m.Focus = fields[m.focusIndex()+1]
		return None
	}

	if len(m.BookMatches) == 0 {
		m.Error = "Please select a book first"
		return None
	}
	if strings.TrimSpace(m.Chapter) == "" {
		m.AwaitingConfirm = true
		return None
	}
	return AddReading
}

// AddReading parses the current fields and overwrites the matched
// verses' read count and date, discarding whatever was recorded there
// before.
func (m *ManualAdd) AddReading(p *progress.ReadingProgress) error {
	if len(m.BookMatches) == 0 {
		return apperr.NewInputError("please select a book first")
	}
	book := m.BookMatches[m.BookIndex]
	b, ok := m.structure.Book(book)
	if !ok {
		return apperr.NewInputError("book %q not found", book)
	}

	count, err := m.readCount()
	if err != nil {
		return err
	}
	date, err := m.date()
	if err != nil {
		return err
	}

	chapStart, chapEnd, err := m.chapterRange(b)
	if err != nil {
		return err
	}

	for ch := chapStart; ch <= chapEnd; ch++ {
		maxVerse := b.Verses(ch)
		verseInput := ""
		switch {
		case chapStart == chapEnd:
			verseInput = m.VerseStart
		case ch == chapStart:
			verseInput = m.VerseStart
		case ch == chapEnd:
			verseInput = m.VerseEnd
		}

		ranges, err := passage.ParseVerseRanges(verseInput, maxVerse)
		if err != nil {
			return err
		}
		for _, vr := range ranges {
			for v := vr.Start; v <= vr.End; v++ {
				ref := progress.BookRef{Chapter: uint32(ch), Verse: uint32(v)}
				p.SetReadCount(book, ref, count, &date)
			}
		}
	}

	m.Chapter = ""
	m.VerseStart = ""
	m.VerseEnd = ""
	m.ReadCount = ""
	m.Date = ""
	m.Error = ""
	m.Focus = ManualFocusChapter
	return nil
}

func (m *ManualAdd) readCount() (uint32, error) {
	s := strings.TrimSpace(m.ReadCount)
	if s == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, apperr.NewInputError("invalid read count: %q", m.ReadCount)
	}
	return uint32(n), nil
}

func (m *ManualAdd) date() (time.Time, error) {
	s := strings.TrimSpace(m.Date)
	if s == "" {
		return time.Now(), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, apperr.NewInputError("invalid date: %q (want YYYY-MM-DD)", m.Date)
	}
	return d, nil
}

func (m *ManualAdd) chapterRange(b bible.Book) (start, end int, err error) {
	s := strings.TrimSpace(m.Chapter)
	if s == "" {
		return 1, b.Len(), nil
	}
	if idx := strings.Index(s, "-"); idx >= 0 {
		start, err = strconv.Atoi(strings.TrimSpace(s[:idx]))
		if err != nil {
			return 0, 0, apperr.NewInputError("invalid chapter range: %q", s)
		}
		end, err = strconv.Atoi(strings.TrimSpace(s[idx+1:]))
		if err != nil {
			return 0, 0, apperr.NewInputError("invalid chapter range: %q", s)
		}
	} else {
		start, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperr.NewInputError("invalid chapter: %q", s)
		}
		end = start
	}
	if start < 1 || end > b.Len() || start > end {
		return 0, 0, apperr.NewInputError("chapter range %q out of bounds (max: %d)", s, b.Len())
	}
	return start, end, nil
}

// Render fills the match list with the current book matches and selects
// the highlighted one. The form argument is not used: field values are
// not drawn. A thin, untested adapter over the state above.
func (m *ManualAdd) Render(form *tview.Form, matches *tview.List) {
	matches.Clear()
	for _, name := range m.BookMatches {
		matches.AddItem(name, "", 0, nil)
	}
	if len(m.BookMatches) > 0 {
		matches.SetCurrentItem(m.BookIndex)
	}
}
