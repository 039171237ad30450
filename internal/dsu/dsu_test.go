package dsu

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	d, err := New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Size())
	assert.Equal(t, 5, d.Count())
	assert.False(t, d.IsConnected())
}

func TestNew_zero(t *testing.T) {
	d, err := New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Size())
	assert.Equal(t, 0, d.Count())
	assert.True(t, d.IsConnected())
}

func TestNew_negativeSize(t *testing.T) {
	_, err := New(-1)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestDisjointSet_UnionFind(t *testing.T) {
	d, err := New(5)
	require.NoError(t, err)

	require.NoError(t, d.Union(0, 1))
	require.NoError(t, d.Union(1, 2))
	require.NoError(t, d.Union(3, 4))

	assert.Equal(t, 2, d.Count())
	connected, err := d.Connected(0, 2)
	require.NoError(t, err)
	assert.True(t, connected)
	connected, err = d.Connected(0, 4)
	require.NoError(t, err)
	assert.False(t, connected)
}

func TestDisjointSet_Find_outOfRange(t *testing.T) {
	d, err := New(3)
	require.NoError(t, err)

	_, err = d.Find(-1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = d.Find(3)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.ErrorIs(t, d.Union(0, 3), ErrIndexOutOfRange)
}

func TestDisjointSet_Union_idempotent(t *testing.T) {
	d, err := New(4)
	require.NoError(t, err)

	require.NoError(t, d.Union(0, 1))
	count := d.Count()
	require.NoError(t, d.Union(0, 1))
	require.NoError(t, d.Union(1, 0))

	assert.Equal(t, count, d.Count())
	connected, err := d.Connected(0, 1)
	require.NoError(t, err)
	assert.True(t, connected)
}

func TestDisjointSet_Union_monotonicCoarsening(t *testing.T) {
	d, err := New(6)
	require.NoError(t, err)

	pairs := [][2]int{{0, 1}, {2, 3}, {1, 2}, {0, 3}, {4, 5}, {5, 4}}
	prev := d.Count()
	for _, p := range pairs {
		before, err := d.Connected(p[0], p[1])
		require.NoError(t, err)
		require.NoError(t, d.Union(p[0], p[1]))
		if before {
			assert.Equal(t, prev, d.Count())
		} else {
			assert.Equal(t, prev-1, d.Count())
		}
		prev = d.Count()
	}
	assert.Equal(t, 2, d.Count())
}

func TestDisjointSet_Connected_symmetric(t *testing.T) {
	d, err := New(4)
	require.NoError(t, err)
	require.NoError(t, d.Union(0, 2))

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			xy, err := d.Connected(x, y)
			require.NoError(t, err)
			yx, err := d.Connected(y, x)
			require.NoError(t, err)
			assert.Equal(t, xy, yx)
		}
	}
}

func TestDisjointSet_Find_compressionTransparent(t *testing.T) {
	d, err := New(8)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		require.NoError(t, d.Union(i, i+1))
	}

	root, err := d.Find(7)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		r, err := d.Find(7)
		require.NoError(t, err)
		assert.Equal(t, root, r)
	}

	// Every element touched by Find now points at the root directly.
	assert.Equal(t, root, d.Parents()[7])
}

func TestDisjointSet_Components_partition(t *testing.T) {
	d, err := New(7)
	require.NoError(t, err)
	require.NoError(t, d.Union(0, 1))
	require.NoError(t, d.Union(2, 3))
	require.NoError(t, d.Union(3, 4))

	components := d.Components()
	assert.Equal(t, d.Count(), len(components))

	seen := make(map[int]bool)
	for root, members := range components {
		assert.Contains(t, members, root)
		for i := 1; i < len(members); i++ {
			assert.Less(t, members[i-1], members[i])
		}
		for _, m := range members {
			assert.False(t, seen[m])
			seen[m] = true
		}
	}
	assert.Equal(t, 7, len(seen))
}

func TestDisjointSet_ComponentSize(t *testing.T) {
	d, err := New(5)
	require.NoError(t, err)
	require.NoError(t, d.Union(0, 1))
	require.NoError(t, d.Union(1, 2))

	size, err := d.ComponentSize(2)
	require.NoError(t, err)
	assert.Equal(t, 3, size)
	size, err = d.ComponentSize(4)
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestDisjointSet_Reset(t *testing.T) {
	d, err := New(5)
	require.NoError(t, err)
	require.NoError(t, d.Union(0, 1))
	require.NoError(t, d.Union(2, 3))

	d.Reset()

	assert.Equal(t, 5, d.Count())
	for x := 0; x < 5; x++ {
		for y := x + 1; y < 5; y++ {
			connected, err := d.Connected(x, y)
			require.NoError(t, err)
			assert.False(t, connected)
		}
	}
}

func TestDisjointSet_rankTieBreak(t *testing.T) {
	d, err := New(4)
	require.NoError(t, err)

	// Equal ranks: x's root becomes the parent.
	require.NoError(t, d.Union(0, 1))
	root, err := d.Find(1)
	require.NoError(t, err)
	assert.Equal(t, 0, root)

	require.NoError(t, d.Union(2, 3))
	root, err = d.Find(3)
	require.NoError(t, err)
	assert.Equal(t, 2, root)

	// Ranks equal again at 1: the first argument's root wins.
	require.NoError(t, d.Union(2, 0))
	root, err = d.Find(1)
	require.NoError(t, err)
	assert.Equal(t, 2, root)
}

func TestDisjointSet_SetParent(t *testing.T) {
	d, err := New(3)
	require.NoError(t, err)

	require.NoError(t, d.SetParent(1, 0))
	assert.Equal(t, 2, d.Count())
	connected, err := d.Connected(0, 1)
	require.NoError(t, err)
	assert.True(t, connected)

	assert.ErrorIs(t, d.SetParent(3, 0), ErrIndexOutOfRange)
	assert.ErrorIs(t, d.SetParent(0, 5), ErrIndexOutOfRange)
	assert.ErrorIs(t, d.SetRank(-1, 0), ErrIndexOutOfRange)
	assert.ErrorIs(t, d.SetRank(0, -1), ErrInvalidSize)
}

func TestDisjointSet_String(t *testing.T) {
	d, err := New(4)
	require.NoError(t, err)
	require.NoError(t, d.Union(0, 2))

	assert.Equal(t, "DisjointSet([[0 2] [1] [3]])", d.String())
}
