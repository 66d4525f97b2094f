package dict

import (
	"errors"
	"fmt"
)

// ErrKeyLength is the error kind returned by Set and Replace when a key does
// not have the number of elements fixed by the container's first insertion.
var ErrKeyLength = errors.New("key length mismatch")

// Entry is a (composite key, value) pair.
type Entry[K comparable, V any] struct {
	Key []K
	Val V
}

// slot holds either a leaf value or a child Map.
type slot[K comparable, V any] struct {
	val   V
	child *Map[K, V]
}

// Map is a container keyed by fixed-length sequences of comparable elements.
// A Map value represents one level of the key: it maps a key element to a
// value when the level is the last key position, or to a nested Map holding
// the remaining positions otherwise.
//
// The zero Map is an empty container ready for use. A Map must not be
// copied after first use.
type Map[K comparable, V any] struct {
	// keyLen is fixed by the first insertion, 0 until then
	keyLen int
	// size is the number of leaves in this subtree
	size int
	// elems holds this level's elements in first-seen order
	elems []K
	slots map[K]slot[K, V]
	// parent is nil at the root
	parent *Map[K, V]
}

// New returns a new Map optionally initialized with the given entries,
// inserted in order. Keys that are permutations of each other are distinct
// entries. New panics if an entry's key length differs from the length
// fixed by the first entry; Set is the non-panicking path.
func New[K comparable, V any](init ...Entry[K, V]) *Map[K, V] {
	return Init(&Map[K, V]{}, init...)
}

// Init resets m to an empty container and inserts the given entries in
// order, panicking like New on a key-length mismatch. Returns m.
func Init[K comparable, V any](m *Map[K, V], init ...Entry[K, V]) *Map[K, V] {
	*m = Map[K, V]{}
	for _, e := range init {
		if err := m.Set(e.Key, e.Val); err != nil {
			panic(err)
		}
	}
	return m
}

// Len returns the number of entries stored under m.
func (m *Map[K, V]) Len() int {
	return m.size
}

func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// KeyLen returns the key length fixed by the first insertion,
// or 0 if nothing has been inserted yet.
func (m *Map[K, V]) KeyLen() int {
	return m.keyLen
}

func (m *Map[K, V]) String() string {
	return fmt.Sprintf("<dict.Map keyLen=%d len=%d>", m.keyLen, m.size)
}

// Set associates a value with a composite key, overwriting any previous
// value under an equal key. The first Set on an empty container fixes the
// key length; afterwards every key must have exactly that many elements or
// Set fails with ErrKeyLength, reporting both lengths and leaving the
// container unchanged.
func (m *Map[K, V]) Set(key []K, val V) error {
	return m.Replace(key, func(V, bool) V { return val })
}

// Replace applies repl to the previous value stored under key (the zero V
// and false when the key is absent) and stores the result. Key length rules
// are the same as for Set.
func (m *Map[K, V]) Replace(key []K, repl func(prev V, ok bool) V) error {
	switch {
	case len(key) == 0 && m.keyLen == 0:
		return fmt.Errorf("%w: key must not be empty", ErrKeyLength)
	case m.keyLen != 0 && len(key) != m.keyLen:
		return fmt.Errorf("%w: map keys have %d elements, got %d",
			ErrKeyLength, m.keyLen, len(key))
	}
	if m.keyLen == 0 {
		m.keyLen = len(key)
	}
	if m.replace(key, repl) {
		// a new leaf appeared - ancestors of this (sub-)map grow too
		for p := m.parent; p != nil; p = p.parent {
			p.size++
		}
	}
	return nil
}

// replace descends the trie with an already validated key and reports
// whether a new leaf was created.
func (m *Map[K, V]) replace(key []K, repl func(V, bool) V) bool {
	first, rest := key[0], key[1:]
	sl, ok := m.slots[first]

	if len(rest) == 0 {
		sl.val = repl(sl.val, ok)
		m.put(first, sl)
		if ok {
			return false
		}
		m.size++
		return true
	}
	if !ok {
		sl.child = &Map[K, V]{keyLen: m.keyLen - 1, parent: m}
		m.put(first, sl)
	}
	if !sl.child.replace(rest, repl) {
		return false
	}
	m.size++
	return true
}

// put stores a slot, recording a first-seen element in the level order.
func (m *Map[K, V]) put(elem K, sl slot[K, V]) {
	if m.slots == nil {
		m.slots = make(map[K]slot[K, V])
	}
	if _, ok := m.slots[elem]; !ok {
		m.elems = append(m.elems, elem)
	}
	m.slots[elem] = sl
}

// Get returns the value stored under the given full-length key. A key whose
// path breaks at any level, or whose length differs from the fixed key
// length, is reported as absent - lookups never fail with an error.
func (m *Map[K, V]) Get(key []K) (V, bool) {
	if m.keyLen == 0 || len(key) != m.keyLen {
		var zero V
		return zero, false
	}
	return m.get(key)
}

func (m *Map[K, V]) get(key []K) (V, bool) {
	sl, ok := m.slots[key[0]]
	switch {
	case !ok:
		var zero V
		return zero, false
	case len(key) == 1:
		return sl.val, true
	}
	return sl.child.get(key[1:])
}

// Sub returns the live sub-map holding every entry whose key starts with
// the given prefix, addressable by the remaining key elements. The result
// is a view backed by the same structure, not a copy: later mutations of m
// are visible through it and vice versa. Sub reports false when the path
// breaks before the prefix is consumed, or when the prefix is not shorter
// than the full key length. An empty prefix returns m itself.
func (m *Map[K, V]) Sub(prefix []K) (*Map[K, V], bool) {
	if len(prefix) == 0 {
		return m, true
	}
	if len(prefix) >= m.keyLen {
		return nil, false
	}
	return m.sub(prefix)
}

func (m *Map[K, V]) sub(prefix []K) (*Map[K, V], bool) {
	sl, ok := m.slots[prefix[0]]
	if !ok {
		return nil, false
	}
	if len(prefix) == 1 {
		return sl.child, true
	}
	return sl.child.sub(prefix[1:])
}
