package rtree

import (
	"context"

	"github.com/hupe1980/rtree/geometry"
)

// Tree is an immutable R-tree. Every mutation returns a new Tree that shares
// all untouched nodes with the receiver, so any number of versions can be
// read concurrently without locking.
//
// The zero value is not usable; create trees with New or a TreeBuilder.
type Tree[V comparable] struct {
	root    Node[V]
	size    int
	context *Context
	opts    *options
}

// New creates an empty tree. A nil Context selects the defaults of
// Builder.
func New[V comparable](c *Context, optFns ...Option) *Tree[V] {
	if c == nil {
		var err error
		if c, err = Builder[V]().Context(); err != nil {
			panic(err)
		}
	}
	o := applyOptions(optFns)
	o.logger = o.logger.WithDimensions(c.dimensions)
	return &Tree[V]{context: c, opts: &o}
}

func (t *Tree[V]) with(root Node[V], size int) *Tree[V] {
	return &Tree[V]{root: root, size: size, context: t.context, opts: t.opts}
}

// Root returns the root node, or nil when the tree is empty.
func (t *Tree[V]) Root() Node[V] { return t.root }

// Size returns the number of entries.
func (t *Tree[V]) Size() int { return t.size }

// IsEmpty reports whether the tree has no entries.
func (t *Tree[V]) IsEmpty() bool { return t.size == 0 }

// Context returns the tree's configuration.
func (t *Tree[V]) Context() *Context { return t.context }

// Depth returns the number of levels: 0 for an empty tree and 1 when the
// root is a leaf.
func (t *Tree[V]) Depth() int {
	if t.root == nil {
		return 0
	}
	return height[V](t.root)
}

// Bounds returns the bounding rectangle of all entries. ok is false for an
// empty tree.
func (t *Tree[V]) Bounds() (r geometry.Rectangle, ok bool) {
	if t.root == nil {
		return geometry.Rectangle{}, false
	}
	return t.root.MBR(), true
}

// logCtx is the context attached to structural log records. Mutations are
// pure functions without a caller context.
func logCtx() context.Context { return context.Background() }

func (t *Tree[V]) checkDimensions(g geometry.Geometry) error {
	if g == nil {
		return ErrNilGeometry
	}
	if d := g.Dimensions(); d != t.context.dimensions {
		return &ErrDimensionMismatch{Expected: t.context.dimensions, Actual: d}
	}
	return nil
}
