package passage

import "testing"

func TestParseVerseRangesEmptyIsWholeChapter(t *testing.T) {
	got, err := ParseVerseRanges("", 30)
	if err != nil {
		t.Fatal(err)
	}
	want := []VerseRange{{Start: 1, End: 30}}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseVerseRangesWhitespaceOnlyIsWholeChapter(t *testing.T) {
	got, err := ParseVerseRanges("   ", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != (VerseRange{Start: 1, End: 10}) {
		t.Errorf("got %+v", got)
	}
}

func TestParseVerseRangesSingleVerse(t *testing.T) {
	got, err := ParseVerseRanges("5", 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != (VerseRange{Start: 5, End: 5}) {
		t.Errorf("got %+v", got)
	}
}

func TestParseVerseRangesMixedList(t *testing.T) {
	got, err := ParseVerseRanges("1-3, 5, 7-9", 30)
	if err != nil {
		t.Fatal(err)
	}
	want := []VerseRange{{1, 3}, {5, 5}, {7, 9}}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseVerseRangesRejectsOutOfRange(t *testing.T) {
	if _, err := ParseVerseRanges("40", 30); err == nil {
		t.Error("expected error for verse beyond max")
	}
}

func TestParseVerseRangesRejectsBackwardsRange(t *testing.T) {
	if _, err := ParseVerseRanges("10-5", 30); err == nil {
		t.Error("expected error for start > end")
	}
}

func TestParseVerseRangesRejectsGarbage(t *testing.T) {
	if _, err := ParseVerseRanges("abc", 30); err == nil {
		t.Error("expected error for non-numeric input")
	}
}

func TestParsePassageSimpleBook(t *testing.T) {
	p, err := ParsePassage("John 3:16")
	if err != nil {
		t.Fatal(err)
	}
	if p.Book != "John" || p.Chapter != 3 {
		t.Errorf("got book=%q chapter=%d, want John 3", p.Book, p.Chapter)
	}
	if len(p.Verses) != 1 || p.Verses[0] != (VerseRange{16, 16}) {
		t.Errorf("got verses %+v, want [{16 16}]", p.Verses)
	}
}

func TestParsePassageMultiWordBookWithNumericPrefix(t *testing.T) {
	p, err := ParsePassage("1 Corinthians 13:4-7")
	if err != nil {
		t.Fatal(err)
	}
	if p.Book != "1 Corinthians" {
		t.Errorf("got book=%q, want %q", p.Book, "1 Corinthians")
	}
	if p.Chapter != 13 {
		t.Errorf("got chapter=%d, want 13", p.Chapter)
	}
	if len(p.Verses) != 1 || p.Verses[0] != (VerseRange{4, 7}) {
		t.Errorf("got verses %+v, want [{4 7}]", p.Verses)
	}
}

func TestParsePassageMultipleVerseRanges(t *testing.T) {
	p, err := ParsePassage("John 3:16, 18-21")
	if err != nil {
		t.Fatal(err)
	}
	want := []VerseRange{{16, 16}, {18, 21}}
	if len(p.Verses) != len(want) {
		t.Fatalf("got %+v, want %+v", p.Verses, want)
	}
	for i := range want {
		if p.Verses[i] != want[i] {
			t.Errorf("index %d: got %+v, want %+v", i, p.Verses[i], want[i])
		}
	}
}

func TestParsePassageRejectsEmptyInput(t *testing.T) {
	if _, err := ParsePassage(""); err == nil {
		t.Error("expected error for empty passage")
	}
}

func TestParsePassageRejectsMissingColon(t *testing.T) {
	if _, err := ParsePassage("John 3 16"); err == nil {
		t.Error("expected error for missing colon")
	}
}
