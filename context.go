package rtree

// Context is the immutable configuration shared by every node of a tree.
type Context struct {
	dimensions  int
	minChildren int
	maxChildren int
	selector    Selector
	splitter    Splitter
}

// NewContext validates and creates a Context.
//
// An overflowing node holds maxChildren+1 items and must split into two
// groups of at least minChildren each, so maxChildren+1 >= 2*minChildren is
// required. maxChildren must also be at least 3.
func NewContext(dimensions, minChildren, maxChildren int, selector Selector, splitter Splitter) (*Context, error) {
	switch {
	case dimensions < 1:
		return nil, &ErrInvalidContext{Field: "dimensions", Value: dimensions, Reason: "must be at least 1"}
	case minChildren < 1:
		return nil, &ErrInvalidContext{Field: "minChildren", Value: minChildren, Reason: "must be at least 1"}
	case maxChildren <= minChildren:
		return nil, &ErrInvalidContext{Field: "maxChildren", Value: maxChildren, Reason: "must exceed minChildren"}
	case maxChildren < 3:
		return nil, &ErrInvalidContext{Field: "maxChildren", Value: maxChildren, Reason: "must be at least 3"}
	case maxChildren+1 < 2*minChildren:
		return nil, &ErrInvalidContext{Field: "minChildren", Value: minChildren, Reason: "too large to split maxChildren+1 items into two valid nodes"}
	case selector == nil:
		return nil, &ErrInvalidContext{Field: "selector", Reason: "must not be nil"}
	case splitter == nil:
		return nil, &ErrInvalidContext{Field: "splitter", Reason: "must not be nil"}
	}

	return &Context{
		dimensions:  dimensions,
		minChildren: minChildren,
		maxChildren: maxChildren,
		selector:    selector,
		splitter:    splitter,
	}, nil
}

// Dimensions returns the number of axes of every geometry in the tree.
func (c *Context) Dimensions() int { return c.dimensions }

// MinChildren returns the minimum number of children of a non-root node.
func (c *Context) MinChildren() int { return c.minChildren }

// MaxChildren returns the maximum number of children of any node.
func (c *Context) MaxChildren() int { return c.maxChildren }

// Selector returns the subtree selection policy.
func (c *Context) Selector() Selector { return c.selector }

// Splitter returns the node split policy.
func (c *Context) Splitter() Splitter { return c.splitter }
