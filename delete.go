package rtree

import (
	"iter"
	"time"

	"github.com/hupe1980/rtree/geometry"
)

// deletion carries the state of one delete through the recursion.
type deletion[V comparable] struct {
	match     func(Entry[V]) bool
	mbr       geometry.Rectangle
	removeAll bool

	removed      int
	removedNodes int
	orphans      []Entry[V]
}

func (d *deletion[V]) finished() bool {
	return !d.removeAll && d.removed > 0
}

// Delete returns a tree without e. When removeAll is false only the first
// matching entry is removed. If e is not present the receiver itself is
// returned.
func (t *Tree[V]) Delete(e Entry[V], removeAll bool) *Tree[V] {
	if t.checkDimensions(e.geometry) != nil {
		return t
	}
	return t.delete(&deletion[V]{
		match:     e.Equal,
		mbr:       e.MBR(),
		removeAll: removeAll,
	})
}

// DeleteValue is shorthand for Delete(NewEntry(value, g), removeAll).
func (t *Tree[V]) DeleteValue(value V, g geometry.Geometry, removeAll bool) *Tree[V] {
	return t.Delete(NewEntry(value, g), removeAll)
}

// DeleteGeometry removes entries whose geometry equals g, whatever their
// value.
func (t *Tree[V]) DeleteGeometry(g geometry.Geometry, removeAll bool) *Tree[V] {
	if t.checkDimensions(g) != nil {
		return t
	}
	return t.delete(&deletion[V]{
		match:     func(e Entry[V]) bool { return g.Equal(e.geometry) },
		mbr:       g.MBR(),
		removeAll: removeAll,
	})
}

// DeleteAll deletes the entries one at a time.
func (t *Tree[V]) DeleteAll(entries []Entry[V], removeAll bool) *Tree[V] {
	result := t
	for _, e := range entries {
		result = result.Delete(e, removeAll)
	}
	return result
}

// DeleteSeq deletes every entry of seq one at a time.
func (t *Tree[V]) DeleteSeq(seq iter.Seq[Entry[V]], removeAll bool) *Tree[V] {
	result := t
	for e := range seq {
		result = result.Delete(e, removeAll)
	}
	return result
}

func (t *Tree[V]) delete(d *deletion[V]) *Tree[V] {
	start := time.Now()
	defer func() {
		t.opts.metricsCollector.RecordDelete(d.removed, time.Since(start))
	}()

	if t.root == nil {
		return t
	}

	root, changed := t.deleteFrom(t.root, d, true)
	if !changed {
		return t
	}

	collapsed := false
	for {
		nl, ok := root.(*NonLeaf[V])
		if !ok || len(nl.children) != 1 {
			break
		}
		root = nl.children[0]
		collapsed = true
	}
	if collapsed {
		t.opts.logger.LogRootCollapse(logCtx(), height[V](root))
	}

	result := t.with(root, t.size-d.removed-len(d.orphans))
	if d.removedNodes > 0 {
		t.opts.metricsCollector.RecordCondense(len(d.orphans))
		t.opts.logger.LogCondense(logCtx(), d.removedNodes, len(d.orphans))
	}
	for _, e := range d.orphans {
		result = result.insert(e)
	}
	return result
}

// deleteFrom returns the replacement for n and whether anything beneath n
// changed. A nil replacement means n is gone: it became empty, or it
// underflowed and its remaining entries were moved to d.orphans.
func (t *Tree[V]) deleteFrom(n Node[V], d *deletion[V], isRoot bool) (Node[V], bool) {
	if d.finished() || !n.MBR().Intersects(d.mbr) {
		return n, false
	}

	minChildren := t.context.minChildren

	switch n := n.(type) {
	case *Leaf[V]:
		var kept []Entry[V]
		changed := false
		for i, e := range n.entries {
			if !d.finished() && d.match(e) {
				if !changed {
					kept = make([]Entry[V], i, len(n.entries)-1)
					copy(kept, n.entries[:i])
					changed = true
				}
				d.removed++
				continue
			}
			if changed {
				kept = append(kept, e)
			}
		}
		switch {
		case !changed:
			return n, false
		case len(kept) == 0:
			return nil, true
		case !isRoot && len(kept) < minChildren:
			d.orphans = append(d.orphans, kept...)
			d.removedNodes++
			return nil, true
		}
		return newLeaf(kept), true

	case *NonLeaf[V]:
		var children []Node[V]
		changed := false
		for i, c := range n.children {
			nc, ch := t.deleteFrom(c, d, false)
			if !ch {
				if changed {
					children = append(children, c)
				}
				continue
			}
			if !changed {
				children = make([]Node[V], i, len(n.children))
				copy(children, n.children[:i])
				changed = true
			}
			if nc != nil {
				children = append(children, nc)
			}
		}
		switch {
		case !changed:
			return n, false
		case len(children) == 0:
			return nil, true
		case !isRoot && len(children) < minChildren:
			for _, c := range children {
				d.orphans = collectEntries(d.orphans, c)
			}
			d.removedNodes++
			return nil, true
		}
		return newNonLeaf(children), true
	}

	return n, false
}
