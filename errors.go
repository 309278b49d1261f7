package rtree

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/rtree/geometry"
)

var (
	// ErrEmptySplit is raised (as an assertion failure panic) when a
	// splitter is asked to partition an empty item list.
	ErrEmptySplit = errors.New("rtree: cannot split an empty item list")

	// ErrNilGeometry is returned when an entry without a geometry is added.
	ErrNilGeometry = errors.New("rtree: entry has no geometry")
)

// ErrDimensionMismatch indicates that a geometry does not have the tree's
// number of dimensions.
type ErrDimensionMismatch = geometry.ErrDimensionMismatch

// ErrInvalidContext indicates a Context that cannot describe a valid tree.
type ErrInvalidContext struct {
	Field  string
	Value  int
	Reason string
}

func (e *ErrInvalidContext) Error() string {
	return fmt.Sprintf("rtree: invalid context: %s=%d: %s", e.Field, e.Value, e.Reason)
}

// assertSplit panics with an assertion failure when a splitter result does
// not partition n items into two groups of at least minSize.
func assertSplit(n, minSize int, groupA, groupB []int) {
	if len(groupA)+len(groupB) != n {
		panic(errors.AssertionFailedf("split returned %d+%d items, want %d", len(groupA), len(groupB), n))
	}
	if len(groupA) < minSize || len(groupB) < minSize {
		panic(errors.AssertionFailedf("split groups %d and %d below minimum %d", len(groupA), len(groupB), minSize))
	}
	seen := make([]bool, n)
	for _, g := range [2][]int{groupA, groupB} {
		for _, i := range g {
			if i < 0 || i >= n || seen[i] {
				panic(errors.AssertionFailedf("split returned invalid or duplicate index %d", i))
			}
			seen[i] = true
		}
	}
}
