// Package rangemap implements a generic interval map: a keyed container
// whose keys are disjoint, half-open ranges over an ordered domain, with
// user-supplied merge semantics on overlap and automatic coalescing of
// adjacent ranges that carry fusable values.
package rangemap

import (
	"cmp"

	"github.com/google/btree"
)

// degree controls the branching factor of the underlying B-tree. The data
// sets this package serves (per-book verse ranges, at most a few tens of
// thousands of entries) are small enough that this has no practical
// performance consequence; it only needs to be >= 2.
const degree = 32

// Coalescer is the capability a value type provides so that two touching
// or overlapping ranges carrying "equivalent" values can be represented as
// a single range. Coalesce(a, b) should return (c, true) when a range
// carrying a immediately followed by a range carrying b is indistinguishable
// from a single range carrying c, and (_, false) otherwise.
//
// Implementations are expected to be commutative and equivalence-respecting:
// Coalesce(a, b) and Coalesce(b, a) must agree on whether fusion happens and,
// when it does, on the fused value (up to equality). A value type that
// breaks this contract produces undefined map state; RangeMap treats it as a
// caller error, not something it detects.
type Coalescer[V any] interface {
	Coalesce(other V) (V, bool)
}

// Eq adapts any comparable type into a Coalescer that fuses iff the wrapped
// values are equal, mirroring the default "coalesce iff equal" behavior
// available to any equality-bearing type.
type Eq[T comparable] struct {
	Value T
}

// Coalesce implements Coalescer by fusing two Eq values iff they are equal.
func (e Eq[T]) Coalesce(other Eq[T]) (Eq[T], bool) {
	if e.Value == other.Value {
		return e, true
	}
	var zero Eq[T]
	return zero, false
}

// MergeFunc computes the value to store for the intersection of an existing
// range carrying old and an incoming insert carrying new. It is supplied
// per-call; RangeMap never stores it.
type MergeFunc[V any] func(old, new V) V

// Entry is one stored (start, end) half-open range and its value.
type Entry[K any, V any] struct {
	Start K
	End   K
	Value V
}

// RangeMap is a keyed container of disjoint half-open ranges [start, end)
// over an ordered key domain K, each carrying a value V. It is created
// empty and mutated only through InsertWith / InsertReplace; there is no
// public removal primitive.
type RangeMap[K cmp.Ordered, V Coalescer[V]] struct {
	tree *btree.BTreeG[Entry[K, V]]
}

// New creates an empty RangeMap.
func New[K cmp.Ordered, V Coalescer[V]]() *RangeMap[K, V] {
	less := func(a, b Entry[K, V]) bool { return a.Start < b.Start }
	return &RangeMap[K, V]{tree: btree.NewG(degree, less)}
}

// Len returns the number of stored ranges.
func (m *RangeMap[K, V]) Len() int {
	return m.tree.Len()
}

// predecessor returns the stored entry with the greatest start strictly
// less than k, if any.
func (m *RangeMap[K, V]) predecessor(k K) (Entry[K, V], bool) {
	var found Entry[K, V]
	ok := false
	m.tree.DescendLessOrEqual(Entry[K, V]{Start: k}, func(e Entry[K, V]) bool {
		if e.Start < k {
			found = e
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// entriesIn returns the stored entries with start in [lo, hi), ascending.
func (m *RangeMap[K, V]) entriesIn(lo, hi K) []Entry[K, V] {
	var out []Entry[K, V]
	m.tree.AscendRange(Entry[K, V]{Start: lo}, Entry[K, V]{Start: hi}, func(e Entry[K, V]) bool {
		out = append(out, e)
		return true
	})
	return out
}

// InsertReplace inserts value over [start, end), keeping the new value on
// overlap. Equivalent to InsertWith with a merge that always picks new.
func (m *RangeMap[K, V]) InsertReplace(start, end K, value V) {
	m.InsertWith(start, end, value, func(_, new V) V { return new })
}

// InsertWith inserts value over the half-open range [start, end), splitting,
// merging, and coalescing as necessary so the map satisfies its invariants
// afterward. merge is called exactly once per maximal overlap segment to
// produce the value that region carries in the result; points covered only
// by the new insert carry value unchanged. A zero-width or inverted range
// (start >= end) is a no-op.
func (m *RangeMap[K, V]) InsertWith(start, end K, value V, merge MergeFunc[V]) {
	if !(start < end) {
		return
	}

	var toInsert []Entry[K, V]
	var toRemove []K

	cursor := start

	if pred, ok := m.predecessor(start); ok {
		ls, le, lv := pred.Start, pred.End, pred.Value
		switch {
		case cursor == le:
			if _, okc := lv.Coalesce(value); okc {
				cursor = ls
			}
		case cursor < le:
			if _, okc := lv.Coalesce(value); okc {
				cursor = ls
			} else {
				if end < le {
					toInsert = append(toInsert, Entry[K, V]{Start: end, End: le, Value: lv})
				}
				nextEnd := le
				if end < nextEnd {
					nextEnd = end
				}
				toInsert = append(toInsert, Entry[K, V]{Start: ls, End: cursor, Value: lv})
				toInsert = append(toInsert, Entry[K, V]{Start: cursor, End: nextEnd, Value: merge(lv, value)})
				cursor = nextEnd
			}
		}
	}

	coalescedValue := value
	for _, e := range m.entriesIn(start, end) {
		if v2, okc := e.Value.Coalesce(coalescedValue); okc {
			coalescedValue = v2
			toRemove = append(toRemove, e.Start)
			continue
		}

		if cursor < e.Start {
			toInsert = append(toInsert, Entry[K, V]{Start: cursor, End: e.Start, Value: coalescedValue})
			coalescedValue = value
		}

		if e.End <= end {
			toInsert = append(toInsert, Entry[K, V]{Start: e.Start, End: e.End, Value: merge(e.Value, coalescedValue)})
			cursor = e.End
		} else {
			toInsert = append(toInsert, Entry[K, V]{Start: end, End: e.End, Value: e.Value})
			toInsert = append(toInsert, Entry[K, V]{Start: e.Start, End: end, Value: merge(e.Value, coalescedValue)})
			cursor = end
		}
	}

	if cursor < end {
		toInsert = append(toInsert, Entry[K, V]{Start: cursor, End: end, Value: coalescedValue})
	}

	for _, k := range toRemove {
		m.tree.Delete(Entry[K, V]{Start: k})
	}
	for _, e := range toInsert {
		m.tree.ReplaceOrInsert(e)
	}

	m.coalesceInRange(start, end)
}

// coalesceInRange fuses adjacent stored entries whose union touches
// [lo, hi] inclusive on both ends, repeating until no further fusion is
// possible.
func (m *RangeMap[K, V]) coalesceInRange(lo, hi K) {
	var entries []Entry[K, V]
	if pred, ok := m.predecessor(lo); ok && !(pred.End < lo) {
		entries = append(entries, pred)
	}
	entries = append(entries, m.entriesIn(lo, hi)...)
	if e, ok := m.tree.Get(Entry[K, V]{Start: hi}); ok {
		entries = append(entries, e)
	}

	type run struct {
		start, end K
		value      V
		count      int
	}
	var cur *run
	var toRemove []K
	var toUpdate []Entry[K, V]

	flush := func() {
		if cur != nil && cur.count > 1 {
			toUpdate = append(toUpdate, Entry[K, V]{Start: cur.start, End: cur.end, Value: cur.value})
		}
	}

	for _, e := range entries {
		if cur == nil {
			cur = &run{start: e.Start, end: e.End, value: e.Value, count: 1}
			continue
		}
		if e.Start == cur.end {
			if v2, okc := e.Value.Coalesce(cur.value); okc {
				toRemove = append(toRemove, e.Start)
				cur.end = e.End
				cur.value = v2
				cur.count++
				continue
			}
		}
		flush()
		cur = &run{start: e.Start, end: e.End, value: e.Value, count: 1}
	}
	flush()

	for _, k := range toRemove {
		m.tree.Delete(Entry[K, V]{Start: k})
	}
	for _, e := range toUpdate {
		m.tree.ReplaceOrInsert(e)
	}
}

// Range returns the stored entries whose range has non-empty intersection
// with [qs, qe), ascending by start. Equivalently, every stored entry
// (s, e, v) with s < qe and e > qs.
func (m *RangeMap[K, V]) Range(qs, qe K) []Entry[K, V] {
	if !(qs < qe) {
		return nil
	}
	var out []Entry[K, V]
	if pred, ok := m.predecessor(qs); ok && pred.End > qs {
		out = append(out, pred)
	}
	out = append(out, m.entriesIn(qs, qe)...)
	return out
}

// Iter returns all stored entries, ascending by start.
func (m *RangeMap[K, V]) Iter() []Entry[K, V] {
	var out []Entry[K, V]
	m.tree.Ascend(func(e Entry[K, V]) bool {
		out = append(out, e)
		return true
	})
	return out
}
