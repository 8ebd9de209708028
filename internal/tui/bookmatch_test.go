package tui

import "testing"

func TestMatchBooksEmptyQueryReturnsAllInOrder(t *testing.T) {
	all := []string{"Genesis", "Exodus", "Leviticus"}
	got := MatchBooks(all, "")
	if len(got) != 3 || got[0] != "Genesis" || got[2] != "Leviticus" {
		t.Errorf("got %v", got)
	}
}

func TestMatchBooksExactPrefixRanksFirst(t *testing.T) {
	all := []string{"Genesis", "Exodus", "Ezra", "Ezekiel"}
	got := MatchBooks(all, "ez")
	if len(got) == 0 || got[0] != "Ezra" && got[0] != "Ezekiel" {
		t.Errorf("expected an Ez* book first, got %v", got)
	}
	for _, name := range got {
		if name == "Genesis" {
			t.Errorf("Genesis should not match query %q: %v", "ez", got)
		}
	}
}

func TestMatchBooksSubsequenceMatch(t *testing.T) {
	all := []string{"John", "1 John", "2 John", "3 John", "Jonah"}
	got := MatchBooks(all, "jn")
	if len(got) == 0 {
		t.Fatal("expected at least one match for subsequence 'jn'")
	}
	for _, name := range got {
		if name == "Jonah" {
			return
		}
	}
	t.Errorf("expected Jonah among matches for subsequence 'jn', got %v", got)
}

func TestMatchBooksNoMatchIsEmpty(t *testing.T) {
	got := MatchBooks([]string{"Genesis", "Exodus"}, "xyz123")
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestAllBookNamesReturnsCanonicalCount(t *testing.T) {
	names := AllBookNames(testStructure(t))
	if len(names) != 66 {
		t.Errorf("got %d book names, want 66", len(names))
	}
}
