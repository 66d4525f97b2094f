// Package counter provides a frequency counter over fixed-length
// composite keys, backed by trie/dict.
//
// A key absent from the counter reads as zero, so Inc and IncBy work
// without a prior Set. Counts can go negative.
package counter

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/aglyzov/go-mkey/trie/dict"
)

// Counted pairs a composite key with its count.
type Counted[K comparable] struct {
	Key   []K
	Count int
}

// Counter counts occurrences of composite keys. All keys share the
// length fixed by the first counted key. The zero value is an empty
// counter ready for use.
type Counter[K comparable] struct {
	dict *dict.Map[K, int]
}

// Init resets a counter and accumulates the given counts into it.
// It panics when the keys disagree on length.
func Init[K comparable](c *Counter[K], counted ...Counted[K]) *Counter[K] {
	c.dict = dict.New[K, int]()
	for _, ck := range counted {
		if _, err := c.IncBy(ck.Key, ck.Count); err != nil {
			panic(err)
		}
	}
	return c
}

// New returns a counter pre-filled with the given counts.
// It panics when the keys disagree on length.
func New[K comparable](counted ...Counted[K]) *Counter[K] {
	return Init(&Counter[K]{}, counted...)
}

func (c *Counter[K]) mp() *dict.Map[K, int] {
	if c.dict == nil {
		c.dict = dict.New[K, int]()
	}
	return c.dict
}

// Len returns the number of counted keys.
func (c *Counter[K]) Len() int {
	return c.mp().Len()
}

func (c *Counter[K]) Empty() bool {
	return c.mp().Empty()
}

// KeyLen returns the fixed key length, or 0 before the first counted key.
func (c *Counter[K]) KeyLen() int {
	return c.mp().KeyLen()
}

func (c *Counter[K]) String() string {
	return fmt.Sprintf("<counter.Counter keyLen=%d len=%d>", c.KeyLen(), c.Len())
}

// Get returns the count associated with the key, zero when absent.
func (c *Counter[K]) Get(key []K) int {
	count, _ := c.mp().Get(key)
	return count
}

// Replace applies repl to the previous count of a key (zero when absent)
// and stores the result. Returns the previous count.
func (c *Counter[K]) Replace(key []K, repl func(int) int) (int, error) {
	var prev int
	err := c.mp().Replace(key, func(old int, _ bool) int {
		prev = old
		return repl(old)
	})
	if err != nil {
		return 0, err
	}
	return prev, nil
}

// Set associates a count with a key. Returns the previous count.
func (c *Counter[K]) Set(key []K, count int) (int, error) {
	return c.Replace(key, func(int) int { return count })
}

// IncBy increments the count associated with the key by delta and
// returns the new count.
func (c *Counter[K]) IncBy(key []K, delta int) (int, error) {
	prev, err := c.Replace(key, func(prev int) int { return prev + delta })
	if err != nil {
		return 0, err
	}
	return prev + delta, nil
}

// Inc increments the count associated with the key by 1 and returns it.
func (c *Counter[K]) Inc(key []K) (int, error) {
	return c.IncBy(key, 1)
}

// Dec decrements the count associated with the key by 1 and returns it.
func (c *Counter[K]) Dec(key []K) (int, error) {
	return c.IncBy(key, -1)
}

// Sub returns a live counter over the keys sharing the given prefix,
// counted by their remaining elements. See dict.Map.Sub for the
// reported-false cases.
func (c *Counter[K]) Sub(prefix []K) (*Counter[K], bool) {
	sub, ok := c.mp().Sub(prefix)
	if !ok {
		return nil, false
	}
	return &Counter[K]{dict: sub}, true
}

// Merge accumulates another counter's keys matching the prefix into
// this one. Counts of common keys are added up. A nil other or an
// unmatched prefix is a no-op.
func (c *Counter[K]) Merge(other *Counter[K], prefix []K) error {
	if other == nil || other.dict == nil {
		return nil
	}
	src := other.dict

	// a full-length prefix addresses a single key
	if n := src.KeyLen(); n != 0 && len(prefix) == n {
		if count, ok := src.Get(prefix); ok {
			_, err := c.IncBy(prefix, count)
			return err
		}
		return nil
	}
	if len(prefix) > 0 {
		var ok bool
		if src, ok = src.Sub(prefix); !ok {
			return nil
		}
	}
	for suffix, count := range src.All() {
		key := make([]K, 0, len(prefix)+len(suffix))
		key = append(key, prefix...)
		key = append(key, suffix...)

		if _, err := c.IncBy(key, count); err != nil {
			return err
		}
	}
	return nil
}

// Keys yields all counted keys in first-seen order.
func (c *Counter[K]) Keys() iter.Seq[[]K] {
	return c.mp().Keys()
}

// All yields all keys and their counts in first-seen order.
func (c *Counter[K]) All() iter.Seq2[[]K, int] {
	return c.mp().All()
}

// CountedKeys returns all keys with their counts, sorted by count in
// descending order. Keys with equal counts keep their first-seen order.
func (c *Counter[K]) CountedKeys() []Counted[K] {
	counted := make([]Counted[K], 0, c.Len())
	for key, count := range c.mp().All() {
		counted = append(counted, Counted[K]{Key: key, Count: count})
	}
	slices.SortStableFunc(counted, func(a, b Counted[K]) int {
		return cmp.Compare(b.Count, a.Count) // inverted, highest count first
	})
	return counted
}
