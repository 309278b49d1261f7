package rtree

import "github.com/hupe1980/rtree/geometry"

// Selector chooses the child subtree that receives a new geometry during
// insertion. Implementations must be stateless and deterministic.
type Selector interface {
	// Select returns the index into candidates of the chosen child. mbr is
	// the bounding rectangle of the geometry being inserted; candidates
	// holds the children's bounding rectangles and is never empty.
	// leafLevel is true when the candidates are leaves.
	Select(mbr geometry.Rectangle, candidates []geometry.Rectangle, leafLevel bool) int
}

var (
	_ Selector = SelectorMinimalAreaIncrease{}
	_ Selector = SelectorMinimalOverlapArea{}
	_ Selector = SelectorRStar{}
)

// SelectorMinimalAreaIncrease picks the child whose area grows least,
// breaking ties by the smaller resulting area and then by position.
type SelectorMinimalAreaIncrease struct{}

// Select implements Selector.
func (SelectorMinimalAreaIncrease) Select(mbr geometry.Rectangle, candidates []geometry.Rectangle, _ bool) int {
	best := 0
	bestInc, bestArea := areaIncrease(candidates[0], mbr)
	for i := 1; i < len(candidates); i++ {
		inc, area := areaIncrease(candidates[i], mbr)
		if inc < bestInc || (inc == bestInc && area < bestArea) {
			best, bestInc, bestArea = i, inc, area
		}
	}
	return best
}

// SelectorMinimalOverlapArea picks the child whose overlap with its
// siblings grows least once it absorbs the new geometry. Ties fall back to
// area increase, then resulting area, then position.
type SelectorMinimalOverlapArea struct{}

// Select implements Selector.
func (SelectorMinimalOverlapArea) Select(mbr geometry.Rectangle, candidates []geometry.Rectangle, _ bool) int {
	best := 0
	bestOverlap := overlapIncrease(candidates, 0, mbr)
	bestInc, bestArea := areaIncrease(candidates[0], mbr)
	for i := 1; i < len(candidates); i++ {
		overlap := overlapIncrease(candidates, i, mbr)
		inc, area := areaIncrease(candidates[i], mbr)
		switch {
		case overlap < bestOverlap:
		case overlap == bestOverlap && inc < bestInc:
		case overlap == bestOverlap && inc == bestInc && area < bestArea:
		default:
			continue
		}
		best, bestOverlap, bestInc, bestArea = i, overlap, inc, area
	}
	return best
}

// SelectorRStar is the R*-tree ChooseSubtree: minimal overlap increase when
// choosing among leaves, minimal area increase everywhere else.
type SelectorRStar struct{}

// Select implements Selector.
func (SelectorRStar) Select(mbr geometry.Rectangle, candidates []geometry.Rectangle, leafLevel bool) int {
	if leafLevel {
		return SelectorMinimalOverlapArea{}.Select(mbr, candidates, leafLevel)
	}
	return SelectorMinimalAreaIncrease{}.Select(mbr, candidates, leafLevel)
}

// areaIncrease returns how much c grows to absorb r, and the grown area.
func areaIncrease(c, r geometry.Rectangle) (increase, area float64) {
	area = c.Union(r).Area()
	return area - c.Area(), area
}

// overlapIncrease returns the growth of the overlap between candidates[i]
// and its siblings after candidates[i] absorbs r.
func overlapIncrease(candidates []geometry.Rectangle, i int, r geometry.Rectangle) float64 {
	c := candidates[i]
	grown := c.Union(r)
	var before, after float64
	for j, o := range candidates {
		if j == i {
			continue
		}
		before += c.IntersectionArea(o)
		after += grown.IntersectionArea(o)
	}
	return after - before
}
