package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/jsimonrichard/brp/internal/progress"
)

func typeTextManual(m *ManualAdd, s string) {
	for _, ch := range s {
		m.HandleKey(key(tcell.KeyRune, ch))
	}
}

func selectBook(m *ManualAdd, query string) {
	typeTextManual(m, query)
	m.HandleKey(key(tcell.KeyEnter, 0))
}

func TestManualAddHandleKeyEsc(t *testing.T) {
	m := NewManualAdd(testStructure(t))
	if a := m.HandleKey(key(tcell.KeyEsc, 0)); a != Cancel {
		t.Errorf("got %v, want Cancel", a)
	}
}

func TestManualAddTabSkipsVerseEndWithoutChapterRange(t *testing.T) {
	m := NewManualAdd(testStructure(t))
	selectBook(m, "genesis")
	if m.Focus != ManualFocusChapter {
		t.Fatalf("focus = %v, want ManualFocusChapter", m.Focus)
	}
	typeTextManual(m, "1")
	m.HandleKey(key(tcell.KeyTab, 0)) // -> VerseStart
	if m.Focus != ManualFocusVerseStart {
		t.Fatalf("focus = %v, want ManualFocusVerseStart", m.Focus)
	}
	m.HandleKey(key(tcell.KeyTab, 0)) // -> ReadCount, skipping VerseEnd
	if m.Focus != ManualFocusReadCount {
		t.Errorf("focus = %v, want ManualFocusReadCount (VerseEnd should be skipped)", m.Focus)
	}
}

func TestManualAddTabVisitsVerseEndWithChapterRange(t *testing.T) {
	m := NewManualAdd(testStructure(t))
	selectBook(m, "genesis")
	typeTextManual(m, "1-3")
	m.HandleKey(key(tcell.KeyTab, 0)) // -> VerseStart
	m.HandleKey(key(tcell.KeyTab, 0)) // -> VerseEnd
	if m.Focus != ManualFocusVerseEnd {
		t.Errorf("focus = %v, want ManualFocusVerseEnd", m.Focus)
	}
}

func TestManualAddEmptyChapterRequiresConfirmation(t *testing.T) {
	m := NewManualAdd(testStructure(t))
	selectBook(m, "obadiah")
	// Chapter left empty: Tab straight through to the last field and Enter.
	for i := 0; i < 10 && m.Focus != ManualFocusDate; i++ {
		m.HandleKey(key(tcell.KeyTab, 0))
	}
	a := m.HandleKey(key(tcell.KeyEnter, 0))
	if a != None {
		t.Fatalf("got action %v, want None (awaiting confirmation)", a)
	}
	if !m.AwaitingConfirm {
		t.Fatal("expected AwaitingConfirm to be set for whole-book overwrite")
	}

	a = m.HandleKey(key(tcell.KeyEnter, 0))
	if a != AddReading {
		t.Errorf("got action %v after confirming, want AddReading", a)
	}
}

func TestManualAddConfirmationEscCancelsOnlyThePopup(t *testing.T) {
	m := NewManualAdd(testStructure(t))
	m.AwaitingConfirm = true
	a := m.HandleKey(key(tcell.KeyEsc, 0))
	if a != None {
		t.Errorf("got %v, want None", a)
	}
	if m.AwaitingConfirm {
		t.Error("expected AwaitingConfirm cleared after Esc")
	}
}

func TestManualAddOverwritesExistingReadCount(t *testing.T) {
	m := NewManualAdd(testStructure(t))
	p := progress.New()
	p.MarkRead("Genesis", progress.BookRef{Chapter: 1, Verse: 1})
	p.MarkRead("Genesis", progress.BookRef{Chapter: 1, Verse: 1})

	selectBook(m, "genesis")
	typeTextManual(m, "1")
	m.HandleKey(key(tcell.KeyTab, 0))
	typeTextManual(m, "1")
	m.HandleKey(key(tcell.KeyTab, 0))
	typeTextManual(m, "5")

	if err := m.AddReading(p); err != nil {
		t.Fatal(err)
	}
	if count := p.ReadCount("Genesis", progress.BookRef{Chapter: 1, Verse: 1}); count != 5 {
		t.Errorf("got read count %d, want 5 (overwritten)", count)
	}
}

func TestManualAddChapterRangeMarksMiddleChaptersFully(t *testing.T) {
	m := NewManualAdd(testStructure(t))
	p := progress.New()
	selectBook(m, "genesis")
	typeTextManual(m, "1-3")
	m.HandleKey(key(tcell.KeyTab, 0))
	typeTextManual(m, "10")
	m.HandleKey(key(tcell.KeyTab, 0))
	typeTextManual(m, "5")

	if err := m.AddReading(p); err != nil {
		t.Fatal(err)
	}
	// Chapter 2 (the middle chapter) should be fully marked, verse 1 included.
	if p.ReadCount("Genesis", progress.BookRef{Chapter: 2, Verse: 1}) != 1 {
		t.Error("expected chapter 2 verse 1 to be marked read")
	}
}

func TestManualAddInvalidReadCountErrors(t *testing.T) {
	m := NewManualAdd(testStructure(t))
	selectBook(m, "genesis")
	typeTextManual(m, "1")
	m.ReadCount = "-5" // typeRune would reject '-' for this field; set directly
	if _, err := m.readCount(); err == nil {
		t.Error("expected error for negative read count")
	}
}

func TestManualAddInvalidDateErrors(t *testing.T) {
	m := NewManualAdd(testStructure(t))
	m.Date = "not-a-date"
	if _, err := m.date(); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestManualAddNoBookSelectedErrors(t *testing.T) {
	m := &ManualAdd{}
	if err := m.AddReading(progress.New()); err == nil {
		t.Error("expected error when no book is selected")
	}
}
