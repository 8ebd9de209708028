// Package display formats reading statistics and reading history into the
// human-readable strings shown in the terminal UI.
package display

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jsimonrichard/brp/internal/stats"
)

// FormatCounts renders a (min, more, total) triple the way the dashboard
// shows progress next to a book or chapter.
func FormatCounts(c stats.Counts) string {
	if c.Min == 0 {
		return "0%"
	}
	if c.More == 0 {
		return fmt.Sprintf("%dx", c.Min)
	}
	if c.More == c.Total && c.Total > 0 {
		return fmt.Sprintf("%dx", c.Min)
	}
	if c.Total >= 100 {
		pct := int(math.Round(float64(c.More) / float64(c.Total) * 100))
		return fmt.Sprintf("%dx + %d%%", c.Min, pct)
	}
	return fmt.Sprintf("%dx + %d/%d verses", c.Min, c.More, c.Total)
}

// RelativeDate renders the gap between now and then the way the dashboard
// annotates a last-read date.
func RelativeDate(now, then time.Time) string {
	days := int(now.Truncate(24 * time.Hour).Sub(then.Truncate(24*time.Hour)).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days >= 2 && days <= 7:
		return fmt.Sprintf("%d days ago", days)
	case days >= 8 && days <= 14:
		return "last week"
	case days >= 15 && days <= 30:
		weeks := days / 7
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	case days >= 31 && days <= 60:
		months := days / 30
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	default:
		return then.Format("2006-01-02")
	}
}

// Touch is one reading event: a chapter of a book read on a given date.
type Touch struct {
	Date    time.Time
	Book    string
	Chapter int
}

// DaySummary is the consolidated description of everything read on one
// date.
type DaySummary struct {
	Date    time.Time
	Summary string
}

// ConsolidateTouches groups touches by date (preserving the order dates
// first appear), then by book within a date (preserving first-seen book
// order), collapsing each book's chapters into maximal contiguous runs
// ("Book A-B" or "Book N"), and joins a date's book summaries with ", ".
func ConsolidateTouches(touches []Touch) []DaySummary {
	type dayKey = string
	dayFormat := func(t time.Time) dayKey { return t.Format("2006-01-02") }

	var dateOrder []dayKey
	dateOf := map[dayKey]time.Time{}
	booksByDate := map[dayKey][]string{}
	chaptersByDateBook := map[dayKey]map[string][]int{}

	for _, touch := range touches {
		key := dayFormat(touch.Date)
		if _, seen := dateOf[key]; !seen {
			dateOrder = append(dateOrder, key)
			dateOf[key] = touch.Date
			booksByDate[key] = nil
			chaptersByDateBook[key] = map[string][]int{}
		}
		if _, seen := chaptersByDateBook[key][touch.Book]; !seen {
			booksByDate[key] = append(booksByDate[key], touch.Book)
		}
		chaptersByDateBook[key][touch.Book] = append(chaptersByDateBook[key][touch.Book], touch.Chapter)
	}

	out := make([]DaySummary, 0, len(dateOrder))
	for _, key := range dateOrder {
		var parts []string
		for _, book := range booksByDate[key] {
			for _, run := range consolidateChapters(chaptersByDateBook[key][book]) {
				parts = append(parts, fmt.Sprintf("%s %s", book, run))
			}
		}
		out = append(out, DaySummary{Date: dateOf[key], Summary: join(parts, ", ")})
	}
	return out
}

// consolidateChapters sorts and deduplicates chapters and renders each
// maximal contiguous run as its own string, e.g. [1,2,3,5] -> ["1-3", "5"].
func consolidateChapters(chapters []int) []string {
	uniq := append([]int(nil), chapters...)
	sort.Ints(uniq)
	uniq = dedupeSorted(uniq)

	var runs []string
	for i := 0; i < len(uniq); {
		start := uniq[i]
		end := start
		j := i + 1
		for j < len(uniq) && uniq[j] == end+1 {
			end = uniq[j]
			j++
		}
		if start == end {
			runs = append(runs, fmt.Sprintf("%d", start))
		} else {
			runs = append(runs, fmt.Sprintf("%d-%d", start, end))
		}
		i = j
	}
	return runs
}

func dedupeSorted(sorted []int) []int {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func join(parts []string, sep string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += sep
		}
		out += p
	}
	return out
}
