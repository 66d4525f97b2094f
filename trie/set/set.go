// Package set provides a set of fixed-length composite keys, backed
// by trie/dict.
package set

import (
	"fmt"
	"iter"

	"github.com/aglyzov/go-mkey/trie/dict"
)

// Set holds unique composite keys. All keys share the length fixed by
// the first added key. The zero value is an empty set ready for use.
type Set[K comparable] struct {
	dict *dict.Map[K, struct{}]
}

// Init resets a set and adds the given keys to it.
// It panics when the keys disagree on length.
func Init[K comparable](s *Set[K], keys ...[]K) *Set[K] {
	s.dict = dict.New[K, struct{}]()
	for _, key := range keys {
		if _, err := s.Add(key); err != nil {
			panic(err)
		}
	}
	return s
}

// New returns a set pre-filled with the given keys.
// It panics when the keys disagree on length.
func New[K comparable](keys ...[]K) *Set[K] {
	return Init(&Set[K]{}, keys...)
}

func (s *Set[K]) mp() *dict.Map[K, struct{}] {
	if s.dict == nil {
		s.dict = dict.New[K, struct{}]()
	}
	return s.dict
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.mp().Len()
}

func (s *Set[K]) Empty() bool {
	return s.mp().Empty()
}

// KeyLen returns the fixed key length, or 0 before the first added key.
func (s *Set[K]) KeyLen() int {
	return s.mp().KeyLen()
}

func (s *Set[K]) String() string {
	return fmt.Sprintf("<set.Set keyLen=%d len=%d>", s.KeyLen(), s.Len())
}

// Add puts a key into the set. It reports whether the key was not
// there before.
func (s *Set[K]) Add(key []K) (bool, error) {
	var existed bool
	err := s.mp().Replace(key, func(_ struct{}, ok bool) struct{} {
		existed = ok
		return struct{}{}
	})
	if err != nil {
		return false, err
	}
	return !existed, nil
}

// Has reports whether the key is in the set.
func (s *Set[K]) Has(key []K) bool {
	_, ok := s.mp().Get(key)
	return ok
}

// HasPrefix reports whether at least one key in the set starts with
// the given prefix.
func (s *Set[K]) HasPrefix(prefix []K) bool {
	m := s.mp()
	if len(prefix) == 0 {
		return !m.Empty()
	}
	if n := m.KeyLen(); n != 0 && len(prefix) == n {
		return s.Has(prefix)
	}
	_, ok := m.Sub(prefix)
	return ok
}

// Sub returns a live set over the keys sharing the given prefix,
// keyed by their remaining elements. See dict.Map.Sub for the
// reported-false cases.
func (s *Set[K]) Sub(prefix []K) (*Set[K], bool) {
	sub, ok := s.mp().Sub(prefix)
	if !ok {
		return nil, false
	}
	return &Set[K]{dict: sub}, true
}

// Merge adds another set's keys matching the prefix into this one.
// A nil other or an unmatched prefix is a no-op.
func (s *Set[K]) Merge(other *Set[K], prefix []K) error {
	if other == nil || other.dict == nil {
		return nil
	}
	src := other.dict

	// a full-length prefix addresses a single key
	if n := src.KeyLen(); n != 0 && len(prefix) == n {
		if _, ok := src.Get(prefix); ok {
			_, err := s.Add(prefix)
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
	for suffix := range src.Keys() {
		key := make([]K, 0, len(prefix)+len(suffix))
		key = append(key, prefix...)
		key = append(key, suffix...)

		if _, err := s.Add(key); err != nil {
			return err
		}
	}
	return nil
}

// Keys yields all keys in first-seen order.
func (s *Set[K]) Keys() iter.Seq[[]K] {
	return s.mp().Keys()
}

// Prefixes yields the distinct n-element prefixes of all keys in
// first-seen order. See dict.Map.Prefixes.
func (s *Set[K]) Prefixes(n int) iter.Seq[[]K] {
	return s.mp().Prefixes(n)
}
