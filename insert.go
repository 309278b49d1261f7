package rtree

import (
	"iter"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/rtree/geometry"
)

// Add returns a tree with the entries inserted one at a time. If any entry
// has no geometry or the wrong number of dimensions nothing is inserted and
// the receiver is returned with the error.
func (t *Tree[V]) Add(entries ...Entry[V]) (*Tree[V], error) {
	start := time.Now()
	for i, e := range entries {
		if err := t.checkDimensions(e.geometry); err != nil {
			return t, errors.Wrapf(err, "entry %d", i)
		}
	}

	result := t
	for _, e := range entries {
		result = result.insert(e)
	}

	t.opts.metricsCollector.RecordInsert(len(entries), time.Since(start))
	return result, nil
}

// AddValue is shorthand for Add(NewEntry(value, g)).
func (t *Tree[V]) AddValue(value V, g geometry.Geometry) (*Tree[V], error) {
	return t.Add(NewEntry(value, g))
}

// AddAll inserts every entry of seq. On error the entries before the
// failing one stay inserted in the returned tree.
func (t *Tree[V]) AddAll(seq iter.Seq[Entry[V]]) (*Tree[V], error) {
	start := time.Now()
	result := t
	count := 0
	for e := range seq {
		if err := t.checkDimensions(e.geometry); err != nil {
			t.opts.metricsCollector.RecordInsert(count, time.Since(start))
			return result, errors.Wrapf(err, "entry %d", count)
		}
		result = result.insert(e)
		count++
	}
	t.opts.metricsCollector.RecordInsert(count, time.Since(start))
	return result, nil
}

// insert adds one validated entry. Only the nodes on the path from the
// root to the chosen leaf are rebuilt.
func (t *Tree[V]) insert(e Entry[V]) *Tree[V] {
	if t.root == nil {
		return t.with(newLeaf([]Entry[V]{e}), t.size+1)
	}

	nodes := t.insertInto(t.root, e, height[V](t.root))
	if len(nodes) == 1 {
		return t.with(nodes[0], t.size+1)
	}
	return t.with(newNonLeaf(nodes), t.size+1)
}

// insertInto returns the replacement for n: one node, or two after a split.
// h is the height of n.
func (t *Tree[V]) insertInto(n Node[V], e Entry[V], h int) []Node[V] {
	c := t.context

	switch n := n.(type) {
	case *Leaf[V]:
		entries := make([]Entry[V], len(n.entries), len(n.entries)+1)
		copy(entries, n.entries)
		entries = append(entries, e)
		if len(entries) <= c.maxChildren {
			return []Node[V]{newLeaf(entries)}
		}
		a, b := splitItems(c, entries, Entry[V].MBR)
		t.recordSplit(h, len(a), len(b))
		return []Node[V]{newLeaf(a), newLeaf(b)}

	case *NonLeaf[V]:
		i := c.selector.Select(e.MBR(), n.childMBRs(), h == 2)
		if i < 0 || i >= len(n.children) {
			panic(errors.AssertionFailedf("selector returned index %d for %d children", i, len(n.children)))
		}
		replaced := t.insertInto(n.children[i], e, h-1)

		children := make([]Node[V], 0, len(n.children)+1)
		children = append(children, n.children[:i]...)
		children = append(children, replaced...)
		children = append(children, n.children[i+1:]...)
		if len(children) <= c.maxChildren {
			return []Node[V]{newNonLeaf(children)}
		}
		a, b := splitItems(c, children, Node[V].MBR)
		t.recordSplit(h, len(a), len(b))
		return []Node[V]{newNonLeaf(a), newNonLeaf(b)}
	}

	panic(errors.AssertionFailedf("unknown node type %T", n))
}

func (t *Tree[V]) recordSplit(level, sizeA, sizeB int) {
	t.opts.metricsCollector.RecordSplit()
	t.opts.logger.LogSplit(logCtx(), level, sizeA, sizeB)
}
