package rtree

import (
	"github.com/hupe1980/rtree/geometry"
	"github.com/hupe1980/rtree/internal/queue"
)

// candidate is a frontier element: a node keyed by a lower bound on the
// distance of anything beneath it, or an entry keyed by its exact distance.
type candidate[V comparable] struct {
	node    Node[V]
	entry   Entry[V]
	isEntry bool
}

// nearestSource is a best-first branch and bound traversal. The frontier
// pops in ascending distance, so an entry popped from it is closer than
// everything not yet emitted.
type nearestSource[V comparable] struct {
	root        Node[V] // seeded into the frontier on the first advance
	query       geometry.Geometry
	maxDistance float64
	k           int

	frontier *queue.PriorityQueue[candidate[V]]
	best     *queue.PriorityQueue[struct{}] // distances of the k best entries seen
	emitted  int
}

func newNearestSource[V comparable](root Node[V], query geometry.Geometry, maxDistance float64, k int) *nearestSource[V] {
	return &nearestSource[V]{
		root:        root,
		query:       query,
		maxDistance: maxDistance,
		k:           k,
		frontier:    queue.NewMin[candidate[V]](min(k, 64)),
		best:        queue.NewMax[struct{}](min(k, 64)),
	}
}

// pruned reports whether nothing at distance d can be among the results.
func (s *nearestSource[V]) pruned(d float64) bool {
	if d > s.maxDistance {
		return true
	}
	if s.best.Len() < s.k {
		return false
	}
	top, _ := s.best.TopItem()
	return d > top.Distance
}

func (s *nearestSource[V]) pushNode(n Node[V]) {
	d := s.query.Distance(n.MBR())
	if !s.pruned(d) {
		s.frontier.PushItem(candidate[V]{node: n}, d)
	}
}

func (s *nearestSource[V]) pushEntry(e Entry[V]) {
	d := geometry.Distance(s.query, e.geometry)
	if s.pruned(d) {
		return
	}
	// A tie with the current k-th best is not recorded but stays eligible.
	s.best.PushItemBounded(struct{}{}, d, s.k)
	s.frontier.PushItem(candidate[V]{entry: e, isEntry: true}, d)
}

func (s *nearestSource[V]) advance(cancelled func() bool) (Entry[V], bool) {
	var zero Entry[V]
	for s.emitted < s.k {
		if cancelled() {
			return zero, false
		}
		if s.root != nil {
			s.pushNode(s.root)
			s.root = nil
		}
		item, ok := s.frontier.PopItem()
		if !ok || s.pruned(item.Distance) {
			break
		}
		c := item.Value
		if c.isEntry {
			s.emitted++
			return c.entry, true
		}
		switch n := c.node.(type) {
		case *Leaf[V]:
			for _, e := range n.entries {
				s.pushEntry(e)
			}
		case *NonLeaf[V]:
			for _, child := range n.children {
				s.pushNode(child)
			}
		}
	}
	s.frontier.Reset()
	return zero, false
}

// Nearest returns up to k entries within maxDistance of g (boundary
// included) in ascending order of distance. Entries at equal distance come
// out in traversal order. k <= 0 yields nothing.
//
// Nearest panics with *ErrDimensionMismatch if g does not have the tree's
// number of dimensions.
func (t *Tree[V]) Nearest(g geometry.Geometry, maxDistance float64, k int) *Iterator[V] {
	t.mustQuery(g)
	if t.root == nil || k <= 0 {
		return newIterator[V](t, KindNearest, emptySource[V]{})
	}
	return newIterator[V](t, KindNearest, newNearestSource[V](t.root, g, maxDistance, k))
}
