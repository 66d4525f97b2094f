// Package dict implements a composite-key map over byte elements with
// bitmap-compressed nodes.
//
// Unlike trie/dict, which tags each slot with a child pointer and keeps
// first-seen key order, a node here marks its present elements in a
// 256-bit bitmap and stores the live slots densely, ordered by byte
// value. Lookups rank into the dense slice by population count.
// Iteration is lazy and yields keys in ascending byte order. There are
// no sub-views; use trie/dict when prefix views or insertion order
// matter.
package dict

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"

	"github.com/hideo55/go-popcount"
)

// ErrKeyLength is returned by Set when a key does not match the length
// fixed by the first inserted key.
var ErrKeyLength = errors.New("key length mismatch")

// Map is a composite-key map with byte elements and values of type V.
// The zero value is an empty map ready for use.
type Map[V any] struct {
	keyLen int
	size   int
	root   *node[V]
}

// node holds one level of the map. The bitmap marks which byte values
// are present; children (interior levels) and vals (the last level)
// hold the present slots densely, ordered by byte value.
type node[V any] struct {
	bitmap   [4]uint64  // 256 bits representing 2**8 elements
	children []*node[V]
	vals     []V
}

func (n *node[V]) has(idx byte) bool {
	return n.bitmap[idx>>6]>>(idx&0x3F)&1 == 1
}

// rank returns the dense-slot position of idx, counting the present
// elements below it.
func (n *node[V]) rank(idx byte) int {
	ofs := idx >> 6
	cnt := popcount.Count(n.bitmap[ofs] & ((1 << (idx & 0x3F)) - 1))
	for j := byte(0); j < ofs; j++ {
		cnt += popcount.Count(n.bitmap[j])
	}
	return int(cnt)
}

func New[V any]() *Map[V] {
	return &Map[V]{root: &node[V]{}}
}

// Len returns the number of keys in the map.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

func (m *Map[V]) Empty() bool {
	return m.Len() == 0
}

// KeyLen returns the fixed key length, or 0 before the first insertion.
func (m *Map[V]) KeyLen() int {
	if m == nil {
		return 0
	}
	return m.keyLen
}

// Set associates a value with a key. The first successful Set fixes the
// key length for the whole map.
func (m *Map[V]) Set(key []byte, val V) error {
	switch {
	case m.keyLen == 0:
		if len(key) == 0 {
			return fmt.Errorf("%w: key must not be empty", ErrKeyLength)
		}
		m.keyLen = len(key)
	case len(key) != m.keyLen:
		return fmt.Errorf("%w: map keys have %d elements, got %d",
			ErrKeyLength, m.keyLen, len(key))
	}
	if m.root == nil {
		m.root = &node[V]{}
	}

	cur := m.root
	last := m.keyLen - 1

	for i := 0; ; i++ {
		idx := key[i]
		cnt := cur.rank(idx)
		created := !cur.has(idx)
		if created {
			cur.bitmap[idx>>6] |= 1 << (idx & 0x3F)
		}
		if i == last {
			if created {
				var zero V
				cur.vals = append(cur.vals, zero)
				copy(cur.vals[cnt+1:], cur.vals[cnt:])
				m.size++
			}
			cur.vals[cnt] = val
			return nil
		}
		if created {
			cur.children = append(cur.children, nil)
			copy(cur.children[cnt+1:], cur.children[cnt:])
			cur.children[cnt] = &node[V]{}
		}
		cur = cur.children[cnt]
	}
}

// Get returns the value associated with a key. The second return value
// reports whether the key is present; it is false for a key of the
// wrong length.
func (m *Map[V]) Get(key []byte) (V, bool) {
	var zero V
	if m == nil || m.root == nil || m.keyLen == 0 || len(key) != m.keyLen {
		return zero, false
	}

	cur := m.root
	last := m.keyLen - 1

	for i := 0; ; i++ {
		idx := key[i]
		if !cur.has(idx) {
			return zero, false
		}
		cnt := cur.rank(idx)
		if i == last {
			return cur.vals[cnt], true
		}
		cur = cur.children[cnt]
	}
}

// Has reports whether the key is in the map.
func (m *Map[V]) Has(key []byte) bool {
	_, ok := m.Get(key)
	return ok
}

// All yields every key and its value in ascending byte order.
// The yielded key slices are fresh copies the caller may keep.
func (m *Map[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		if m == nil || m.root == nil {
			return
		}
		m.root.yieldAll(make([]byte, 0, m.keyLen), m.keyLen, yield)
	}
}

// yieldAll emits every entry under the node, scanning the bitmap words
// for set bits in ascending order. depth is the number of key elements
// left, counting the node's own.
func (n *node[V]) yieldAll(pfx []byte, depth int, yield func([]byte, V) bool) bool {
	pos := 0
	for ofs := 0; ofs < 4; ofs++ {
		bmp := n.bitmap[ofs]
		for bmp != 0 {
			bit := bits.TrailingZeros64(bmp)
			bmp &= bmp - 1

			key := append(pfx, byte(ofs<<6|bit))
			if depth == 1 {
				if !yield(append([]byte(nil), key...), n.vals[pos]) {
					return false
				}
			} else if !n.children[pos].yieldAll(key, depth-1, yield) {
				return false
			}
			pos++
		}
	}
	return true
}

// Keys yields all keys in ascending byte order.
func (m *Map[V]) Keys() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for key := range m.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values yields all values in ascending key order.
func (m *Map[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, val := range m.All() {
			if !yield(val) {
				return
			}
		}
	}
}
