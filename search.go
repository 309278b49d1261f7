package rtree

import (
	"github.com/hupe1980/rtree/geometry"
)

// frame is a suspended visit of node; next is the index of the next child
// or entry to look at. A frame is tested against nodeTest when first
// reached, not when pushed.
type frame[V comparable] struct {
	node    Node[V]
	next    int
	entered bool
}

// searchSource is a depth-first pre-order traversal kept on an explicit
// stack so that it can stop after any entry and resume later.
type searchSource[V comparable] struct {
	stack     []frame[V]
	nodeTest  func(geometry.Rectangle) bool
	entryTest func(Entry[V]) bool
}

func newSearchSource[V comparable](root Node[V], nodeTest func(geometry.Rectangle) bool, entryTest func(Entry[V]) bool) *searchSource[V] {
	s := &searchSource[V]{nodeTest: nodeTest, entryTest: entryTest}
	if root != nil {
		s.stack = append(s.stack, frame[V]{node: root})
	}
	return s
}

func (s *searchSource[V]) advance(cancelled func() bool) (Entry[V], bool) {
	for len(s.stack) > 0 {
		if cancelled() {
			break
		}
		top := &s.stack[len(s.stack)-1]
		if !top.entered {
			top.entered = true
			if !s.nodeTest(top.node.MBR()) {
				s.pop()
				continue
			}
		}
		switch n := top.node.(type) {
		case *Leaf[V]:
			for top.next < len(n.entries) {
				e := n.entries[top.next]
				top.next++
				if s.entryTest(e) {
					return e, true
				}
			}
			s.pop()
		case *NonLeaf[V]:
			if top.next >= len(n.children) {
				s.pop()
				continue
			}
			c := n.children[top.next]
			top.next++
			s.stack = append(s.stack, frame[V]{node: c})
		}
	}
	var zero Entry[V]
	return zero, false
}

func (s *searchSource[V]) pop() {
	s.stack[len(s.stack)-1] = frame[V]{}
	s.stack = s.stack[:len(s.stack)-1]
}

// Search returns the entries whose geometry intersects g.
//
// Search panics with *ErrDimensionMismatch if g does not have the tree's
// number of dimensions.
func (t *Tree[V]) Search(g geometry.Geometry) *Iterator[V] {
	t.mustQuery(g)
	return t.search(g.Intersects, func(e Entry[V]) bool {
		return geometry.Intersects(g, e.geometry)
	})
}

// SearchWithin returns the entries within maxDistance of g, boundary
// included.
func (t *Tree[V]) SearchWithin(g geometry.Geometry, maxDistance float64) *Iterator[V] {
	t.mustQuery(g)
	return t.search(
		func(r geometry.Rectangle) bool { return g.Distance(r) <= maxDistance },
		func(e Entry[V]) bool { return geometry.Distance(g, e.geometry) <= maxDistance },
	)
}

// SearchFunc returns the entries whose geometry satisfies pred. pred is
// also applied to node bounding rectangles, so it must hold for a
// rectangle whenever it holds for some geometry inside it.
func (t *Tree[V]) SearchFunc(pred func(geometry.Geometry) bool) *Iterator[V] {
	return t.search(
		func(r geometry.Rectangle) bool { return pred(r) },
		func(e Entry[V]) bool { return pred(e.geometry) },
	)
}

// SearchIntersecting prefilters by bounding rectangle like Search, then
// keeps the entries for which test(entryGeometry, g) holds.
func (t *Tree[V]) SearchIntersecting(g geometry.Geometry, test func(entry, query geometry.Geometry) bool) *Iterator[V] {
	t.mustQuery(g)
	mbr := g.MBR()
	return t.search(mbr.Intersects, func(e Entry[V]) bool {
		return e.MBR().Intersects(mbr) && test(e.geometry, g)
	})
}

// Entries returns every entry.
func (t *Tree[V]) Entries() *Iterator[V] {
	return t.search(
		func(geometry.Rectangle) bool { return true },
		func(Entry[V]) bool { return true },
	)
}

func (t *Tree[V]) search(nodeTest func(geometry.Rectangle) bool, entryTest func(Entry[V]) bool) *Iterator[V] {
	if t.root == nil {
		return newIterator[V](t, KindSearch, emptySource[V]{})
	}
	return newIterator[V](t, KindSearch, newSearchSource[V](t.root, nodeTest, entryTest))
}

func (t *Tree[V]) mustQuery(g geometry.Geometry) {
	if err := t.checkDimensions(g); err != nil {
		panic(err)
	}
}
