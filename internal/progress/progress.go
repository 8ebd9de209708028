// Package progress tracks Bible reading progress: for each book, which
// verses have been read, how many times, and when they were last read.
package progress

import (
	"time"

	"github.com/jsimonrichard/brp/internal/rangemap"
)

// BookRef locates a verse within a single book by (chapter, verse),
// ordered lexicographically: chapter first, then verse.
type BookRef struct {
	Chapter uint32
	Verse   uint32
}

// key packs a BookRef into a single ordered scalar so it can serve as the
// key type of a rangemap.RangeMap, which requires cmp.Ordered. Packing
// preserves lexicographic (chapter, verse) order: chapter occupies the
// high 32 bits, verse the low 32 bits.
func (r BookRef) key() uint64 {
	return uint64(r.Chapter)<<32 | uint64(r.Verse)
}

func fromKey(k uint64) BookRef {
	return BookRef{Chapter: uint32(k >> 32), Verse: uint32(k)}
}

// Next returns the verse immediately following r within the same chapter.
func (r BookRef) Next() BookRef {
	return BookRef{Chapter: r.Chapter, Verse: r.Verse + 1}
}

// Less reports whether r sorts before other.
func (r BookRef) Less(other BookRef) bool {
	return r.key() < other.key()
}

// ReadingRecord tracks how many times a passage has been read and when it
// was last read.
type ReadingRecord struct {
	ReadCount uint32
	LastRead  time.Time
}

// Coalesce fuses two adjacent or overlapping ReadingRecords iff they carry
// the same read count, keeping the later of the two LastRead dates. Two
// records with different read counts are never fusable: they represent
// genuinely different reading history for their respective verses.
func (r ReadingRecord) Coalesce(other ReadingRecord) (ReadingRecord, bool) {
	if r.ReadCount != other.ReadCount {
		return ReadingRecord{}, false
	}
	last := r.LastRead
	if other.LastRead.After(last) {
		last = other.LastRead
	}
	return ReadingRecord{ReadCount: r.ReadCount, LastRead: last}, true
}

// bookRanges is the per-book range map, keyed by the packed BookRef scalar.
type bookRanges = rangemap.RangeMap[uint64, ReadingRecord]

// Entry is one stored, disjoint reading-history interval within a book.
type Entry struct {
	Start  BookRef
	End    BookRef
	Record ReadingRecord
}

// ReadingProgress tracks reading history for every book that has at least
// one recorded read.
type ReadingProgress struct {
	Books map[string]*bookRanges
}

// New creates an empty ReadingProgress.
func New() *ReadingProgress {
	return &ReadingProgress{Books: make(map[string]*bookRanges)}
}

func (p *ReadingProgress) ranges(book string) *bookRanges {
	r, ok := p.Books[book]
	if !ok {
		r = rangemap.New[uint64, ReadingRecord]()
		p.Books[book] = r
	}
	return r
}

func accumulate(old, new ReadingRecord) ReadingRecord {
	return ReadingRecord{ReadCount: old.ReadCount + new.ReadCount, LastRead: new.LastRead}
}

// MarkRead records a single read of ref, accumulating onto any existing
// read count for that verse and advancing last_read to now.
func (p *ReadingProgress) MarkRead(book string, ref BookRef) {
	p.MarkReadAt(book, ref, time.Now())
}

// MarkReadAt is MarkRead with an explicit read timestamp, primarily for
// tests and for replaying historical touches.
func (p *ReadingProgress) MarkReadAt(book string, ref BookRef, when time.Time) {
	next := ref.Next()
	p.ranges(book).InsertWith(ref.key(), next.key(), ReadingRecord{ReadCount: 1, LastRead: when}, accumulate)
}

// SetReadCount overwrites the single-verse interval at ref with an explicit
// read count and date, discarding whatever was recorded there before. A
// nil date defaults to now.
func (p *ReadingProgress) SetReadCount(book string, ref BookRef, count uint32, date *time.Time) {
	p.ranges(book).InsertReplace(ref.key(), ref.Next().key(), ReadingRecord{ReadCount: count, LastRead: resolveDate(date)})
}

// MarkReadOverwrite overwrites the single-verse interval at ref with an
// explicit read count and date, the same as SetReadCount. It is kept as a
// distinct method because it reads differently at call sites that are
// overwriting an existing range rather than setting one for the first
// time; the two share an implementation.
func (p *ReadingProgress) MarkReadOverwrite(book string, ref BookRef, count uint32, date *time.Time) {
	p.SetReadCount(book, ref, count, date)
}

func resolveDate(date *time.Time) time.Time {
	if date == nil {
		return time.Now()
	}
	return *date
}

// InsertRaw stores record over [start, end) in book directly, with no
// accumulation, for reconstructing a ReadingProgress from a serialised
// snapshot. Callers are responsible for inserting entries for a book in
// ascending order so the result satisfies RangeMap's invariants.
func (p *ReadingProgress) InsertRaw(book string, start, end BookRef, record ReadingRecord) {
	p.ranges(book).InsertReplace(start.key(), end.key(), record)
}

// Entries returns every stored reading-history interval for a book,
// ascending. Returns nil if the book has no recorded history.
func (p *ReadingProgress) Entries(book string) []Entry {
	r, ok := p.Books[book]
	if !ok {
		return nil
	}
	raw := r.Iter()
	out := make([]Entry, 0, len(raw))
	for _, e := range raw {
		out = append(out, Entry{Start: fromKey(e.Start), End: fromKey(e.End), Record: e.Value})
	}
	return out
}

// Range returns the stored reading-history intervals for a book that
// overlap [from, to), ascending.
func (p *ReadingProgress) Range(book string, from, to BookRef) []Entry {
	r, ok := p.Books[book]
	if !ok {
		return nil
	}
	raw := r.Range(from.key(), to.key())
	out := make([]Entry, 0, len(raw))
	for _, e := range raw {
		out = append(out, Entry{Start: fromKey(e.Start), End: fromKey(e.End), Record: e.Value})
	}
	return out
}

// ReadCount returns the read count covering ref, or 0 if ref has never
// been read.
func (p *ReadingProgress) ReadCount(book string, ref BookRef) uint32 {
	for _, e := range p.Range(book, ref, ref.Next()) {
		if !ref.Less(e.Start) && ref.Less(e.End) {
			return e.Record.ReadCount
		}
	}
	return 0
}
