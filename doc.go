// Package rtree provides an immutable, n-dimensional R-tree.
//
// A Tree indexes entries, each a comparable value paired with a geometry
// (a point, an axis-aligned rectangle or a circle from the geometry
// package). Trees are persistent values: Add and Delete return a new tree
// that shares every untouched node with the old one, so snapshots are cheap
// and any number of goroutines can query a tree without locking.
//
// # Quick Start
//
//	tree := rtree.Builder[string]().MustBuild()
//	tree, _ = tree.AddValue("a", geometry.MustPoint(1, 1))
//	tree, _ = tree.AddValue("b", geometry.MustRectangle([]float32{2, 2}, []float32{3, 4}))
//
//	query := geometry.MustRectangle([]float32{0, 0}, []float32{2, 2})
//	for e := range tree.Search(query).All(ctx) {
//	    fmt.Println(e.Value())
//	}
//
// # Queries
//
// Search, SearchWithin, SearchFunc, SearchIntersecting and Entries walk the
// tree depth-first; Nearest runs a best-first k-nearest-neighbour search.
// All of them return an Iterator, which does no work until entries are
// requested:
//
//	it := tree.Nearest(geometry.MustPoint(0, 0), 10, 3)
//	it.Request(1, func(e rtree.Entry[string]) { fmt.Println(e) })
//	it.Cancel()
//
// # Policies
//
// Subtree selection and node splitting are pluggable. The defaults are the
// quadratic split and minimal area increase; Star switches to the R*-tree
// heuristics:
//
//	tree := rtree.Builder[int]().Dimensions(3).MaxChildren(8).Star().MustBuild()
//
// # Bulk Loading
//
// TreeBuilder.Load packs a known set of entries with Sort-Tile-Recursive
// ordering, which is faster than repeated insertion and yields less
// overlap.
package rtree
