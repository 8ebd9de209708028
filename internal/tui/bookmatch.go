package tui

import (
	"sort"
	"strings"

	"github.com/jsimonrichard/brp/internal/bible"
)

// AllBookNames returns every book name across both testaments, in
// canonical order.
func AllBookNames(structure *bible.Structure) []string {
	books := structure.Books()
	names := make([]string, len(books))
	for i, b := range books {
		names[i] = b.Name
	}
	return names
}

// MatchBooks ranks book names by how well they fuzzy-match query, best
// first. An empty query returns every book in canonical order.
func MatchBooks(all []string, query string) []string {
	if query == "" {
		out := make([]string, len(all))
		copy(out, all)
		return out
	}

	type scored struct {
		name  string
		score int
	}
	q := strings.ToLower(query)
	var matches []scored
	for _, name := range all {
		if score, ok := fuzzyScore(strings.ToLower(name), q); ok {
			matches = append(matches, scored{name, score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

// fuzzyScore reports whether every rune of query appears in name in
// order (a subsequence match), scoring earlier and contiguous matches
// higher so that e.g. "jn" ranks "John" above "1 John".
func fuzzyScore(name, query string) (int, bool) {
	score := 0
	pos := 0
	streak := 0
	for _, r := range query {
		rest := name[pos:]
		idx := strings.IndexRune(rest, r)
		if idx < 0 {
			return 0, false
		}
		if idx == 0 {
			streak++
			score += streak * 2
		} else {
			streak = 0
		}
		score++
		pos += idx + len(string(r))
	}
	return score, true
}
