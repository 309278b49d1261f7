package rtree

import (
	"github.com/cockroachdb/errors"

	"github.com/hupe1980/rtree/geometry"
)

// Splitter partitions the items of an overflowing node into two groups.
// Implementations must be stateless and deterministic.
type Splitter interface {
	// Split returns two disjoint groups of indexes into items that together
	// cover every item, each with at least minSize members. An empty items
	// slice is a programming error and panics.
	Split(items []geometry.Rectangle, minSize int) (groupA, groupB []int)
}

var (
	_ Splitter = SplitterQuadratic{}
	_ Splitter = SplitterRStar{}
)

// checkSplitInput panics on input no splitter can handle and returns the
// effective minimum group size.
func checkSplitInput(n, minSize int) int {
	if n == 0 {
		panic(errors.WithAssertionFailure(ErrEmptySplit))
	}
	if n < 2 {
		panic(errors.AssertionFailedf("cannot split a single item"))
	}
	return max(1, min(minSize, n/2))
}

// splitItems runs the context's splitter over items and maps the index
// groups back onto the items.
func splitItems[T any](c *Context, items []T, mbr func(T) geometry.Rectangle) ([]T, []T) {
	rects := make([]geometry.Rectangle, len(items))
	for i, it := range items {
		rects[i] = mbr(it)
	}

	groupA, groupB := c.splitter.Split(rects, c.minChildren)
	assertSplit(len(items), max(1, min(c.minChildren, len(items)/2)), groupA, groupB)

	a := make([]T, len(groupA))
	for i, idx := range groupA {
		a[i] = items[idx]
	}
	b := make([]T, len(groupB))
	for i, idx := range groupB {
		b[i] = items[idx]
	}
	return a, b
}
