package rtree

import (
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"

	"github.com/hupe1980/rtree/geometry"
)

// SplitterQuadratic is Guttman's quadratic-cost split.
//
// The two seeds are the pair that would waste the most area if grouped
// together; the first such pair in (i, j) order with i < j wins ties. The
// remaining items are assigned in order to the group whose area grows
// least, then the smaller group, then the group with smaller resulting
// area, then group A. Once a group needs every remaining item to reach
// minSize it receives them all.
type SplitterQuadratic struct{}

// Split implements Splitter.
func (SplitterQuadratic) Split(items []geometry.Rectangle, minSize int) ([]int, []int) {
	n := len(items)
	minSize = checkSplitInput(n, minSize)

	seedA, seedB := worstPair(items)
	placed := bitset.New(uint(n))
	placed.Set(uint(seedA)).Set(uint(seedB))

	groupA := make([]int, 1, n-1)
	groupB := make([]int, 1, n-1)
	groupA[0], groupB[0] = seedA, seedB
	mbrA, mbrB := items[seedA], items[seedB]
	remaining := n - 2

	for i := range n {
		if placed.Test(uint(i)) {
			continue
		}

		var toA bool
		switch {
		case len(groupA)+remaining <= minSize:
			toA = true
		case len(groupB)+remaining <= minSize:
		default:
			toA = preferA(mbrA, mbrB, items[i], len(groupA), len(groupB))
		}

		if toA {
			groupA = append(groupA, i)
			mbrA = mbrA.Union(items[i])
		} else {
			groupB = append(groupB, i)
			mbrB = mbrB.Union(items[i])
		}
		placed.Set(uint(i))
		remaining--
	}

	if !placed.All() {
		panic(errors.AssertionFailedf("quadratic split left %d items unplaced", uint(n)-placed.Count()))
	}
	return groupA, groupB
}

func preferA(mbrA, mbrB, r geometry.Rectangle, sizeA, sizeB int) bool {
	incA, areaA := areaIncrease(mbrA, r)
	incB, areaB := areaIncrease(mbrB, r)
	switch {
	case incA != incB:
		return incA < incB
	case sizeA != sizeB:
		return sizeA < sizeB
	case areaA != areaB:
		return areaA < areaB
	default:
		return true
	}
}

// worstPair returns the pair maximizing union(i, j).Area() - i.Area() - j.Area().
func worstPair(items []geometry.Rectangle) (int, int) {
	bestI, bestJ := 0, 1
	worst := math.Inf(-1)
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			waste := items[i].Union(items[j]).Area() - items[i].Area() - items[j].Area()
			if waste > worst {
				bestI, bestJ, worst = i, j, waste
			}
		}
	}
	return bestI, bestJ
}
