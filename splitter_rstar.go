package rtree

import (
	"cmp"
	"math"
	"slices"

	"github.com/hupe1980/rtree/geometry"
)

// SplitterRStar is the R*-tree split.
//
// Items are sorted by lower and by upper bound on every axis, giving
// 2*dimensions orderings. For each ordering every split point k in
// [minSize, n-minSize] yields a candidate pair of groups; the ordering
// with the smallest sum of candidate margins wins (first on ties). Within
// it, the k with the least overlap between the groups is taken, then the
// least combined area, then the smallest k.
type SplitterRStar struct{}

// Split implements Splitter.
func (SplitterRStar) Split(items []geometry.Rectangle, minSize int) ([]int, []int) {
	n := len(items)
	minSize = checkSplitInput(n, minSize)
	dims := items[0].Dimensions()

	var best []int
	bestMargin := math.Inf(1)
	for axis := range dims {
		for _, upper := range [2]bool{false, true} {
			order := sortedIndexes(items, axis, upper)
			prefix, suffix := prefixSuffix(items, order)

			var margin float64
			for k := minSize; k <= n-minSize; k++ {
				margin += prefix[k-1].Perimeter() + suffix[k].Perimeter()
			}
			if margin < bestMargin {
				best, bestMargin = order, margin
			}
		}
	}

	prefix, suffix := prefixSuffix(items, best)
	bestK := minSize
	bestOverlap, bestArea := math.Inf(1), math.Inf(1)
	for k := minSize; k <= n-minSize; k++ {
		a, b := prefix[k-1], suffix[k]
		overlap := a.IntersectionArea(b)
		area := a.Area() + b.Area()
		if overlap < bestOverlap || (overlap == bestOverlap && area < bestArea) {
			bestK, bestOverlap, bestArea = k, overlap, area
		}
	}

	return slices.Clone(best[:bestK]), slices.Clone(best[bestK:])
}

// sortedIndexes returns the item indexes stably sorted by the lower (or
// upper) bound on axis.
func sortedIndexes(items []geometry.Rectangle, axis int, upper bool) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	key := func(i int) float32 {
		if upper {
			return items[i].Max(axis)
		}
		return items[i].Min(axis)
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(key(a), key(b))
	})
	return order
}

// prefixSuffix returns, for the given ordering, prefix[i] = bound of
// order[:i+1] and suffix[i] = bound of order[i:].
func prefixSuffix(items []geometry.Rectangle, order []int) (prefix, suffix []geometry.Rectangle) {
	n := len(order)
	prefix = make([]geometry.Rectangle, n)
	suffix = make([]geometry.Rectangle, n)
	prefix[0] = items[order[0]]
	for i := 1; i < n; i++ {
		prefix[i] = prefix[i-1].Union(items[order[i]])
	}
	suffix[n-1] = items[order[n-1]]
	for i := n - 2; i >= 0; i-- {
		suffix[i] = suffix[i+1].Union(items[order[i]])
	}
	return prefix, suffix
}
