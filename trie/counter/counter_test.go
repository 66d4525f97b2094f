package counter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-mkey/trie/dict"
)

func TestNew(t *testing.T) {
	t.Parallel()

	c := New[string]()

	require.NotNil(t, c)
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Empty())
	assert.Equal(t, 0, c.Get([]string{"a", "b"}))
}

func TestNew_Counted(t *testing.T) {
	t.Parallel()

	c := New(
		Counted[string]{Key: []string{"a", "b"}, Count: 3},
		Counted[string]{Key: []string{"c", "d"}, Count: 2},
		Counted[string]{Key: []string{"a", "b"}, Count: 1}, // accumulates
	)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 4, c.Get([]string{"a", "b"}))
	assert.Equal(t, 2, c.Get([]string{"c", "d"}))
}

func TestNew_PanicsOnLengthMismatch(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		New(
			Counted[string]{Key: []string{"a", "b"}, Count: 1},
			Counted[string]{Key: []string{"c"}, Count: 2},
		)
	})
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var c Counter[string]

	n, err := c.Inc([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, c.KeyLen())
}

func TestInc_Dec(t *testing.T) {
	t.Parallel()

	c := New[string]()
	key := []string{"word", "count"}

	n, err := c.Inc(key)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = c.Inc(key)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = c.Dec(key)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, 1, c.Get(key))
	assert.Equal(t, 1, c.Len())
}

func TestIncBy(t *testing.T) {
	t.Parallel()

	c := New[string]()
	key := []string{"a"}

	n, err := c.IncBy(key, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = c.IncBy(key, -8)
	require.NoError(t, err)
	assert.Equal(t, -3, n, "counts can go negative")
}

func TestSet(t *testing.T) {
	t.Parallel()

	c := New[string]()
	key := []string{"a"}

	prev, err := c.Set(key, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, prev)

	prev, err = c.Set(key, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, prev)

	assert.Equal(t, 20, c.Get(key))
}

func TestReplace(t *testing.T) {
	t.Parallel()

	c := New[string]()
	key := []string{"a"}

	prev, err := c.Replace(key, func(prev int) int { return prev*2 + 1 })
	require.NoError(t, err)
	assert.Equal(t, 0, prev, "an absent key reads as zero")

	prev, err = c.Replace(key, func(prev int) int { return prev*2 + 1 })
	require.NoError(t, err)
	assert.Equal(t, 1, prev)

	assert.Equal(t, 3, c.Get(key))
}

func TestKeyLength(t *testing.T) {
	t.Parallel()

	c := New(Counted[string]{Key: []string{"a", "b"}, Count: 1})

	_, err := c.Inc([]string{"a", "b", "c"})

	require.ErrorIs(t, err, dict.ErrKeyLength)
	assert.ErrorContains(t, err, "map keys have 2 elements, got 3")
	assert.Equal(t, 1, c.Len())
}

func TestSub(t *testing.T) {
	t.Parallel()

	c := New(
		Counted[string]{Key: []string{"en", "cat"}, Count: 2},
		Counted[string]{Key: []string{"en", "dog"}, Count: 1},
		Counted[string]{Key: []string{"de", "katze"}, Count: 5},
	)

	sub, ok := c.Sub([]string{"en"})
	require.True(t, ok)

	assert.Equal(t, 2, sub.Len())
	assert.Equal(t, 2, sub.Get([]string{"cat"}))

	// the sub-counter is a live view
	n, err := sub.Inc([]string{"cat"})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, c.Get([]string{"en", "cat"}))

	_, ok = c.Sub([]string{"fr"})
	assert.False(t, ok)
}

func TestCountedKeys(t *testing.T) {
	t.Parallel()

	c := New[string]()
	words := []string{"a", "b", "c", "a", "bb", "ccc", "a", "ccc"}

	for _, w := range words {
		_, err := c.Inc([]string{w})
		require.NoError(t, err)
	}

	// descending by count, ties keep their first-seen order
	assert.Equal(t, []Counted[string]{
		{Key: []string{"a"}, Count: 3},
		{Key: []string{"ccc"}, Count: 2},
		{Key: []string{"b"}, Count: 1},
		{Key: []string{"c"}, Count: 1},
		{Key: []string{"bb"}, Count: 1},
	}, c.CountedKeys())
}

func TestKeys(t *testing.T) {
	t.Parallel()

	c := New(
		Counted[string]{Key: []string{"b", "x"}, Count: 1},
		Counted[string]{Key: []string{"a", "y"}, Count: 9},
		Counted[string]{Key: []string{"b", "z"}, Count: 4},
	)

	var keys [][]string
	for key := range c.Keys() {
		keys = append(keys, key)
	}

	assert.Equal(t, [][]string{{"b", "x"}, {"b", "z"}, {"a", "y"}}, keys)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	a := New(
		Counted[string]{Key: []string{"ab", "cd"}, Count: 3},
		Counted[string]{Key: []string{"ef", "gh"}, Count: 2},
	)
	b := New(
		Counted[string]{Key: []string{"ab", "cd"}, Count: -1},
		Counted[string]{Key: []string{"ij", "kl"}, Count: 1},
	)

	require.NoError(t, a.Merge(b, nil))

	assert.Equal(t, []Counted[string]{
		{Key: []string{"ab", "cd"}, Count: 2},
		{Key: []string{"ef", "gh"}, Count: 2},
		{Key: []string{"ij", "kl"}, Count: 1},
	}, a.CountedKeys())
}

func TestMerge_Prefix(t *testing.T) {
	t.Parallel()

	src := New(
		Counted[string]{Key: []string{"en", "cat"}, Count: 2},
		Counted[string]{Key: []string{"en", "dog"}, Count: 1},
		Counted[string]{Key: []string{"de", "katze"}, Count: 5},
	)

	// a short prefix merges the subtree, a full-length prefix merges a
	// single key, and an unmatched or overlong prefix is a no-op
	for _, tcase := range []*struct {
		Prefix []string
		ExpLen int
		ExpCat int
	}{
		{[]string{"en"}, 2, 2},
		{[]string{"en", "cat"}, 1, 2},
		{[]string{"fr"}, 0, 0},
		{[]string{"en", "cow"}, 0, 0},
		{[]string{"en", "a", "b"}, 0, 0},
	} {
		name := fmt.Sprintf("%#v", tcase.Prefix)

		t.Run(name, func(t *testing.T) {
			dst := New[string]()

			require.NoError(t, dst.Merge(src, tcase.Prefix))

			assert.Equal(t, tcase.ExpLen, dst.Len())
			assert.Equal(t, tcase.ExpCat, dst.Get([]string{"en", "cat"}))
		})
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	c := New(Counted[string]{Key: []string{"a"}, Count: 1})

	require.NoError(t, c.Merge(nil, nil))
	assert.Equal(t, 1, c.Len())
}

func TestMerge_KeyLenMismatch(t *testing.T) {
	t.Parallel()

	a := New(Counted[string]{Key: []string{"a", "b"}, Count: 1})
	b := New(Counted[string]{Key: []string{"x", "y", "z"}, Count: 1})

	err := a.Merge(b, nil)

	require.ErrorIs(t, err, dict.ErrKeyLength)
}
