package rtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rtree/geometry"
	"github.com/hupe1980/rtree/testutil"
)

func pointTree(t *testing.T, points ...geometry.Point) *Tree[int] {
	t.Helper()
	tree := newTree(t, 4)
	for i, p := range points {
		tree = addAll(t, tree, NewEntry[int](i, p))
	}
	return tree
}

func TestNearest(t *testing.T) {
	diagonal := []geometry.Point{
		geometry.MustPoint(3, 3),
		geometry.MustPoint(1, 1),
		geometry.MustPoint(4, 4),
		geometry.MustPoint(2, 2),
	}
	tree := pointTree(t, diagonal...)
	origin := geometry.MustPoint(0, 0)

	t.Run("ascending distance", func(t *testing.T) {
		assert.Equal(t, []int{1, 3, 0, 2}, valuesOf(t, tree.Nearest(origin, 10, 10)))
	})

	t.Run("limited to k", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, valuesOf(t, tree.Nearest(origin, 10, 2)))
		assert.Equal(t, []int{1}, valuesOf(t, tree.Nearest(origin, 10, 1)))
	})

	t.Run("limited by distance", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, valuesOf(t, tree.Nearest(origin, 3, 10)))
		assert.Empty(t, valuesOf(t, tree.Nearest(origin, 1, 10)))
	})

	t.Run("distance bound is inclusive", func(t *testing.T) {
		tree := pointTree(t, geometry.MustPoint(3, 0), geometry.MustPoint(5, 0))
		assert.Equal(t, []int{0}, valuesOf(t, tree.Nearest(origin, 3, 10)))
	})

	t.Run("non-positive k", func(t *testing.T) {
		assert.Empty(t, valuesOf(t, tree.Nearest(origin, 10, 0)))
		assert.Empty(t, valuesOf(t, tree.Nearest(origin, 10, -1)))
	})

	t.Run("huge k", func(t *testing.T) {
		assert.Len(t, valuesOf(t, tree.Nearest(origin, math.Inf(1), math.MaxInt)), 4)
	})

	t.Run("rectangle query", func(t *testing.T) {
		q := rect(2.5, 2.5, 10, 10)
		got := valuesOf(t, tree.Nearest(q, 10, 2))
		assert.ElementsMatch(t, []int{0, 2}, got)
	})

	t.Run("dimension mismatch panics", func(t *testing.T) {
		err := recoverError(t, func() { tree.Nearest(geometry.MustPoint(0, 0, 0), 1, 1) })
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
	})

	t.Run("lazy", func(t *testing.T) {
		it := tree.Nearest(origin, 10, 10)
		src, ok := it.src.(*nearestSource[int])
		require.True(t, ok)

		assert.Equal(t, 0, it.Request(0, func(Entry[int]) {}))
		assert.Equal(t, 0, src.frontier.Len())

		x, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, 1, x.Value())
		assert.False(t, it.Done())
	})
}

func TestNearestMatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(4711)
	geoms := rng.Geometries(500, 2, 100, 4)

	tree, err := Builder[int]().MaxChildren(8).Build()
	require.NoError(t, err)
	for i, g := range geoms {
		tree = addAll(t, tree, NewEntry(i, g))
	}
	assertInvariants(t, tree)

	for _, q := range rng.Geometries(20, 2, 100, 4) {
		for _, k := range []int{1, 5, 30} {
			want := testutil.BruteForceNearest(geoms, q, 25, k)
			got := entriesOf(t, tree.Nearest(q, 25, k))
			require.Len(t, got, len(want))

			for i := range got {
				d := geometry.Distance(q, got[i].Geometry())
				assert.InDelta(t, want[i].Distance, d, 1e-9)
				if i > 0 {
					assert.GreaterOrEqual(t, d, geometry.Distance(q, got[i-1].Geometry()))
				}
			}
		}
	}
}
