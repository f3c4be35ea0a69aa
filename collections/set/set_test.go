//go:build unit

package set

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates_items", func(t *testing.T) {
		t.Parallel()

		s := New(1, 2, 2, 3)

		assert.Equal(t, 3, s.Len())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		s := New[string]()

		assert.Zero(t, s.Len())
	})
}

func TestAddRemoveContains(t *testing.T) {
	t.Parallel()

	s := New[string]()

	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("z"))

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.False(t, s.Contains("a"))
}

func TestNilSetReads(t *testing.T) {
	t.Parallel()

	var s Set[int]

	assert.False(t, s.Contains(1))
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Values())
	assert.NotPanics(t, s.Clear)
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := New(1, 2, 3)
	s.Clear()

	assert.Zero(t, s.Len())

	// still usable after clearing
	assert.True(t, s.Add(4))
	assert.Equal(t, 1, s.Len())
}

func TestValues(t *testing.T) {
	t.Parallel()

	s := New("a", "b")

	assert.ElementsMatch(t, []string{"a", "b"}, s.Values())
}

func TestClone(t *testing.T) {
	t.Parallel()

	s := New(1, 2)
	cloned := s.Clone()

	cloned.Add(3)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, cloned.Len())
}

func TestUnionIntersectDifference(t *testing.T) {
	t.Parallel()

	left := New(1, 2, 3)
	right := New(3, 4)

	assert.True(t, left.Union(right).Equal(New(1, 2, 3, 4)))
	assert.True(t, left.Intersect(right).Equal(New(3)))
	assert.True(t, left.Difference(right).Equal(New(1, 2)))
	assert.True(t, right.Difference(left).Equal(New(4)))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	t.Run("equal_sets", func(t *testing.T) {
		t.Parallel()
		assert.True(t, New(1, 2).Equal(New(2, 1)))
	})

	t.Run("different_size", func(t *testing.T) {
		t.Parallel()
		assert.False(t, New(1).Equal(New(1, 2)))
	})

	t.Run("same_size_different_members", func(t *testing.T) {
		t.Parallel()
		assert.False(t, New(1, 2).Equal(New(1, 3)))
	})

	t.Run("empty_sets", func(t *testing.T) {
		t.Parallel()
		assert.True(t, New[int]().Equal(New[int]()))
	})
}

type closeRecorder struct {
	closes int
	err    error
}

func (r *closeRecorder) Close() error {
	r.closes++

	return r.err
}

func TestCloseAll(t *testing.T) {
	t.Parallel()

	t.Run("closes_every_member_exactly_once", func(t *testing.T) {
		t.Parallel()

		r1 := &closeRecorder{}
		r2 := &closeRecorder{}
		s := New(r1, r2)

		require.NoError(t, CloseAll(s))

		assert.Zero(t, s.Len())
		assert.Equal(t, 1, r1.closes)
		assert.Equal(t, 1, r2.closes)
	})

	t.Run("empty_set_is_noop", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, CloseAll(New[*closeRecorder]()))
	})

	t.Run("nil_member_is_skipped", func(t *testing.T) {
		t.Parallel()

		r1 := &closeRecorder{}
		s := New(r1, nil)

		require.NoError(t, CloseAll(s))
		assert.Zero(t, s.Len())
		assert.Equal(t, 1, r1.closes)
	})

	t.Run("failure_does_not_stop_traversal", func(t *testing.T) {
		t.Parallel()

		errBoom := errors.New("boom")
		r1 := &closeRecorder{err: errBoom}
		r2 := &closeRecorder{}
		s := New(r1, r2)

		err := CloseAll(s)

		require.ErrorIs(t, err, errBoom)
		assert.Zero(t, s.Len())
		assert.Equal(t, 1, r1.closes)
		assert.Equal(t, 1, r2.closes)
	})
}
