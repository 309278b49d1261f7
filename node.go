package rtree

import (
	"slices"

	"github.com/hupe1980/rtree/geometry"
)

// Node is either a *Leaf or a *NonLeaf. Nodes are never modified after
// construction, so any number of trees may share them.
type Node[V comparable] interface {
	// MBR returns the cached union of the node's children.
	MBR() geometry.Rectangle

	// Count returns the number of entries (leaf) or children (non-leaf).
	Count() int

	sealed()
}

var (
	_ Node[int] = (*Leaf[int])(nil)
	_ Node[int] = (*NonLeaf[int])(nil)
)

// Leaf holds entries.
type Leaf[V comparable] struct {
	entries []Entry[V]
	mbr     geometry.Rectangle
}

// newLeaf takes ownership of entries, which must be non-empty.
func newLeaf[V comparable](entries []Entry[V]) *Leaf[V] {
	mbr := entries[0].MBR()
	for _, e := range entries[1:] {
		mbr = mbr.Union(e.MBR())
	}
	return &Leaf[V]{entries: entries, mbr: mbr}
}

func (*Leaf[V]) sealed() {}

// MBR returns the union of the entries' bounding rectangles.
func (l *Leaf[V]) MBR() geometry.Rectangle { return l.mbr }

// Count returns the number of entries.
func (l *Leaf[V]) Count() int { return len(l.entries) }

// Entry returns the i-th entry.
func (l *Leaf[V]) Entry(i int) Entry[V] { return l.entries[i] }

// Entries returns a copy of the entries.
func (l *Leaf[V]) Entries() []Entry[V] { return slices.Clone(l.entries) }

// NonLeaf holds child nodes, all of the same height.
type NonLeaf[V comparable] struct {
	children []Node[V]
	mbr      geometry.Rectangle
}

// newNonLeaf takes ownership of children, which must be non-empty.
func newNonLeaf[V comparable](children []Node[V]) *NonLeaf[V] {
	mbr := children[0].MBR()
	for _, c := range children[1:] {
		mbr = mbr.Union(c.MBR())
	}
	return &NonLeaf[V]{children: children, mbr: mbr}
}

func (*NonLeaf[V]) sealed() {}

// MBR returns the union of the children's bounding rectangles.
func (n *NonLeaf[V]) MBR() geometry.Rectangle { return n.mbr }

// Count returns the number of children.
func (n *NonLeaf[V]) Count() int { return len(n.children) }

// Child returns the i-th child.
func (n *NonLeaf[V]) Child(i int) Node[V] { return n.children[i] }

// Children returns a copy of the children.
func (n *NonLeaf[V]) Children() []Node[V] { return slices.Clone(n.children) }

// childMBRs collects the bounding rectangles of the children.
func (n *NonLeaf[V]) childMBRs() []geometry.Rectangle {
	mbrs := make([]geometry.Rectangle, len(n.children))
	for i, c := range n.children {
		mbrs[i] = c.MBR()
	}
	return mbrs
}

// height returns the number of levels below and including n. Leaves have
// height 1. The tree is balanced, so following the first child suffices.
func height[V comparable](n Node[V]) int {
	h := 1
	for {
		nl, ok := n.(*NonLeaf[V])
		if !ok {
			return h
		}
		n = nl.children[0]
		h++
	}
}

// collectEntries appends every entry beneath n to dst.
func collectEntries[V comparable](dst []Entry[V], n Node[V]) []Entry[V] {
	switch n := n.(type) {
	case *Leaf[V]:
		return append(dst, n.entries...)
	case *NonLeaf[V]:
		for _, c := range n.children {
			dst = collectEntries(dst, c)
		}
	}
	return dst
}
