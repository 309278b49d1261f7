package rtree

import (
	"context"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hupe1980/rtree/geometry"
	"github.com/hupe1980/rtree/testutil"
)

func sortedValues(it *Iterator[int]) []int {
	entries, err := it.Collect(context.Background())
	if err != nil {
		return nil
	}
	out := make([]int, len(entries))
	for i, x := range entries {
		out[i] = x.Value()
	}
	slices.Sort(out)
	return out
}

func buildRandom(seed int64, n, maxChildren int, star bool) (*Tree[int], []geometry.Geometry) {
	geoms := testutil.NewRNG(seed).Geometries(n, 2, 100, 8)
	b := Builder[int]().MaxChildren(maxChildren)
	if star {
		b = b.Star()
	}
	tree := b.MustBuild()
	for i, g := range geoms {
		tree, _ = tree.AddValue(i, g)
	}
	return tree, geoms
}

func TestTreeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	parameters.Rng.Seed(4711)
	properties := gopter.NewProperties(parameters)

	properties.Property("every inserted entry is returned", prop.ForAll(
		func(seed int64, n, maxChildren int, star bool) bool {
			tree, _ := buildRandom(seed, n, maxChildren, star)
			want := make([]int, n)
			for i := range want {
				want[i] = i
			}
			return checkInvariants(tree) == nil && tree.Size() == n && cmp.Equal(want, sortedValues(tree.Entries()), cmpopts.EquateEmpty())
		},
		gen.Int64Range(0, 1<<20),
		gen.IntRange(0, 200),
		gen.IntRange(3, 12),
		gen.Bool(),
	))

	properties.Property("deletes remove exactly the deleted entries", prop.ForAll(
		func(seed int64, n, maxChildren, stride int) bool {
			tree, geoms := buildRandom(seed, n, maxChildren, false)
			var want []int
			for i, g := range geoms {
				if i%stride == 0 {
					tree = tree.DeleteValue(i, g, false)
					continue
				}
				want = append(want, i)
			}
			return checkInvariants(tree) == nil && tree.Size() == len(want) && cmp.Equal(want, sortedValues(tree.Entries()), cmpopts.EquateEmpty())
		},
		gen.Int64Range(0, 1<<20),
		gen.IntRange(1, 200),
		gen.IntRange(3, 8),
		gen.IntRange(1, 4),
	))

	properties.Property("search agrees with a linear scan", prop.ForAll(
		func(seed int64, n int, star bool) bool {
			tree, geoms := buildRandom(seed, n, 6, star)
			for _, q := range testutil.NewRNG(seed+1).Geometries(10, 2, 100, 30) {
				want := testutil.BruteForceSearch(geoms, q)
				if diff := cmp.Diff(want, sortedValues(tree.Search(q)), cmpopts.EquateEmpty()); diff != "" {
					t.Logf("query %v: %s", q, diff)
					return false
				}
			}
			return true
		},
		gen.Int64Range(0, 1<<20),
		gen.IntRange(1, 300),
		gen.Bool(),
	))

	properties.Property("nearest distances agree with a linear scan", prop.ForAll(
		func(seed int64, n, k int) bool {
			tree, geoms := buildRandom(seed, n, 5, true)
			q := testutil.NewRNG(seed + 1).Points(1, 2, 100)[0]

			want := testutil.BruteForceNearest(geoms, q, 40, k)
			got, err := tree.Nearest(q, 40, k).Collect(context.Background())
			if err != nil || len(got) != len(want) {
				return false
			}
			for i := range got {
				if geometry.Distance(q, got[i].Geometry()) != want[i].Distance {
					return false
				}
			}
			return true
		},
		gen.Int64Range(0, 1<<20),
		gen.IntRange(1, 300),
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}

func TestLoadProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	parameters.Rng.Seed(4711)
	properties := gopter.NewProperties(parameters)

	properties.Property("packed trees hold every entry", prop.ForAll(
		func(seed int64, n, maxChildren int, factor float64) bool {
			entries, _ := randomEntries(seed, n, 2)
			tree, err := Builder[int]().MaxChildren(maxChildren).LoadingFactor(factor).Load(context.Background(), entries)
			if err != nil {
				return false
			}
			return checkInvariants(tree) == nil && tree.Size() == n && len(sortedValues(tree.Entries())) == n
		},
		gen.Int64Range(0, 1<<20),
		gen.IntRange(1, 2000),
		gen.IntRange(3, 32),
		gen.Float64Range(0.1, 1),
	))

	properties.TestingRun(t)
}
