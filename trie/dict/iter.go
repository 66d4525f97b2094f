package dict

import (
	"iter"
	"slices"
)

// Keys returns an iterator over all stored composite keys: depth-first, in
// first-seen insertion order at every level. Every call produces a fresh
// sequence over the live structure, and every yielded key is a fresh slice
// owned by the caller.
func (m *Map[K, V]) Keys() iter.Seq[[]K] {
	return m.Prefixes(0)
}

// Prefixes returns an iterator like Keys truncated to the first n elements
// of every key: each distinct n-element prefix is yielded exactly once, in
// first-seen order. Any n < 1, as well as n >= the fixed key length, yields
// full keys.
func (m *Map[K, V]) Prefixes(n int) iter.Seq[[]K] {
	return func(yield func([]K) bool) {
		m.yieldKeys(nil, n, yield)
	}
}

// yieldKeys walks one level extending pfx and reports whether the walk ran
// to completion. The element list is indexed, not ranged, so elements first
// seen between two yields are still visited.
func (m *Map[K, V]) yieldKeys(pfx []K, n int, yield func([]K) bool) bool {
	for i := 0; i < len(m.elems); i++ {
		var (
			elem = m.elems[i]
			key  = append(pfx, elem)
			sl   = m.slots[elem]
		)
		if sl.child == nil || n == 1 {
			if !yield(slices.Clone(key)) {
				return false
			}
			continue
		}
		next := n
		if next > 0 {
			next--
		}
		if !sl.child.yieldKeys(key, next, yield) {
			return false
		}
	}
	return true
}

// Values returns an iterator over stored values in the same depth-first,
// insertion-ordered traversal as Keys.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.yieldVals(yield)
	}
}

func (m *Map[K, V]) yieldVals(yield func(V) bool) bool {
	for i := 0; i < len(m.elems); i++ {
		sl := m.slots[m.elems[i]]
		if sl.child == nil {
			if !yield(sl.val) {
				return false
			}
			continue
		}
		if !sl.child.yieldVals(yield) {
			return false
		}
	}
	return true
}

// All returns an iterator over (key, value) entries: each key produced by
// Keys paired with the value Get resolves for it at yield time, in Keys
// order.
func (m *Map[K, V]) All() iter.Seq2[[]K, V] {
	return func(yield func([]K, V) bool) {
		for key := range m.Keys() {
			val, _ := m.Get(key)
			if !yield(key, val) {
				return
			}
		}
	}
}

// Entries returns all entries as a slice, in All order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.size)
	for key, val := range m.All() {
		entries = append(entries, Entry[K, V]{key, val})
	}
	return entries
}
