// Package passage parses free-form verse-range lists and full passage
// references ("John 3:16, 18-21") typed by the user into structured
// chapter/verse data.
package passage

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/jsimonrichard/brp/internal/apperr"
)

// VerseRange is an inclusive verse range, e.g. "7-9" or a single verse
// "5" represented as {Start: 5, End: 5}.
type VerseRange struct {
	Start int
	End   int
}

// Passage is a fully parsed "Book chapter:verses" reference.
type Passage struct {
	Book    string
	Chapter int
	Verses  []VerseRange
}

var passageLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[:,\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type verseItem struct {
	Start int  `@Int`
	End   *int `( "-" @Int )?`
}

func (v verseItem) toRange() VerseRange {
	if v.End != nil {
		return VerseRange{Start: v.Start, End: *v.End}
	}
	return VerseRange{Start: v.Start, End: v.Start}
}

type verseListGrammar struct {
	Items []*verseItem `@@ ( "," @@ )*`
}

var verseListParser = participle.MustBuild[verseListGrammar](
	participle.Lexer(passageLexer),
	participle.Elide("Whitespace"),
)

type passageGrammar struct {
	BookPrefix *string      `( @Int )?`
	BookWords  []string     `@Ident+`
	Chapter    int          `@Int ":"`
	Items      []*verseItem `@@ ( "," @@ )*`
}

var passageParser = participle.MustBuild[passageGrammar](
	participle.Lexer(passageLexer),
	participle.Elide("Whitespace"),
)

// ParseVerseRanges parses a comma-separated list of verses and verse
// ranges ("1-3, 5, 7-9"). An empty (or whitespace-only) input means the
// whole chapter: a single range [1, maxVerse]. Every parsed verse and
// range endpoint must fall within [1, maxVerse], and a range's start must
// not exceed its end.
func ParseVerseRanges(input string, maxVerse int) ([]VerseRange, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return []VerseRange{{Start: 1, End: maxVerse}}, nil
	}

	parsed, err := verseListParser.ParseString("", input)
	if err != nil {
		return nil, apperr.NewInputError("invalid verse range %q: %v", input, err)
	}

	ranges := make([]VerseRange, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		r := item.toRange()
		if r.Start > r.End {
			return nil, apperr.NewInputError("invalid range: %d-%d (start after end)", r.Start, r.End)
		}
		if r.End > maxVerse {
			return nil, apperr.NewInputError("invalid range: %d-%d (max: %d)", r.Start, r.End, maxVerse)
		}
		if r.Start < 1 {
			return nil, apperr.NewInputError("invalid verse: %d", r.Start)
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// ParsePassage parses a full reference of the form "Book chapter:verses",
// e.g. "John 3:16, 18-21" or "1 Corinthians 13:4-7".
func ParsePassage(input string) (Passage, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Passage{}, apperr.NewInputError("empty passage reference")
	}

	parsed, err := passageParser.ParseString("", input)
	if err != nil {
		return Passage{}, apperr.NewInputError("invalid passage %q: %v", input, err)
	}

	words := parsed.BookWords
	if parsed.BookPrefix != nil {
		words = append([]string{*parsed.BookPrefix}, words...)
	}

	verses := make([]VerseRange, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		verses = append(verses, item.toRange())
	}

	return Passage{
		Book:    strings.Join(words, " "),
		Chapter: parsed.Chapter,
		Verses:  verses,
	}, nil
}
