package rtree

import (
	"math"
)

// Default configuration of a TreeBuilder.
const (
	DefaultDimensions    = 2
	DefaultMaxChildren   = 4
	DefaultLoadingFactor = 0.7
)

// Builder creates a new tree builder with the default configuration:
// two dimensions, at most 4 children per node, minimal-area-increase
// subtree selection and the quadratic splitter.
//
// The builder is immutable - each method returns a new builder with the updated configuration.
// This ensures thread-safety and prevents accidental state sharing.
//
// Example:
//
//	tree, err := rtree.Builder[string]().
//	    Dimensions(3).
//	    MaxChildren(8).
//	    Star().
//	    Build()
func Builder[V comparable]() TreeBuilder[V] {
	return TreeBuilder[V]{
		dimensions:    DefaultDimensions,
		maxChildren:   DefaultMaxChildren,
		loadingFactor: DefaultLoadingFactor,
	}
}

// TreeBuilder is an immutable fluent builder for trees.
// Each method returns a new builder with the updated configuration.
type TreeBuilder[V comparable] struct {
	dimensions    int
	minChildren   *int
	maxChildren   int
	selector      Selector
	splitter      Splitter
	star          bool
	loadingFactor float64
	logger        *Logger
	metrics       MetricsCollector
}

// Dimensions sets the number of axes of every geometry. Default: 2.
func (b TreeBuilder[V]) Dimensions(n int) TreeBuilder[V] {
	b.dimensions = n
	return b
}

// MinChildren sets the minimum number of children of a non-root node.
// Default: 40% of MaxChildren, rounded, and at least 1.
func (b TreeBuilder[V]) MinChildren(n int) TreeBuilder[V] {
	b.minChildren = &n
	return b
}

// MaxChildren sets the maximum number of children of a node. Default: 4.
func (b TreeBuilder[V]) MaxChildren(n int) TreeBuilder[V] {
	b.maxChildren = n
	return b
}

// Selector sets the subtree selection policy. Default: SelectorMinimalAreaIncrease
// (SelectorRStar after Star).
func (b TreeBuilder[V]) Selector(s Selector) TreeBuilder[V] {
	b.selector = s
	return b
}

// Splitter sets the node split policy. Default: SplitterQuadratic
// (SplitterRStar after Star).
func (b TreeBuilder[V]) Splitter(s Splitter) TreeBuilder[V] {
	b.splitter = s
	return b
}

// Star switches the default selector and splitter to the R*-tree
// heuristics. Explicitly set policies are kept.
func (b TreeBuilder[V]) Star() TreeBuilder[V] {
	b.star = true
	return b
}

// LoadingFactor sets the target fill of nodes created by Load, as a
// fraction of MaxChildren. Default: 0.7.
func (b TreeBuilder[V]) LoadingFactor(f float64) TreeBuilder[V] {
	b.loadingFactor = f
	return b
}

// Logger sets the structured logger for structural events.
func (b TreeBuilder[V]) Logger(l *Logger) TreeBuilder[V] {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b TreeBuilder[V]) Metrics(mc MetricsCollector) TreeBuilder[V] {
	b.metrics = mc
	return b
}

// Context validates the configuration and returns it as a Context.
func (b TreeBuilder[V]) Context() (*Context, error) {
	minChildren := max(1, int(math.Round(0.4*float64(b.maxChildren))))
	if b.minChildren != nil {
		minChildren = *b.minChildren
	}

	selector, splitter := b.selector, b.splitter
	if selector == nil {
		if b.star {
			selector = SelectorRStar{}
		} else {
			selector = SelectorMinimalAreaIncrease{}
		}
	}
	if splitter == nil {
		if b.star {
			splitter = SplitterRStar{}
		} else {
			splitter = SplitterQuadratic{}
		}
	}

	return NewContext(b.dimensions, minChildren, b.maxChildren, selector, splitter)
}

// Build creates an empty tree.
func (b TreeBuilder[V]) Build() (*Tree[V], error) {
	c, err := b.Context()
	if err != nil {
		return nil, err
	}
	return New[V](c, b.options()...), nil
}

// MustBuild creates an empty tree, panicking on error.
func (b TreeBuilder[V]) MustBuild() *Tree[V] {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

func (b TreeBuilder[V]) options() []Option {
	var opts []Option
	if b.logger != nil {
		opts = append(opts, WithLogger(b.logger))
	}
	if b.metrics != nil {
		opts = append(opts, WithMetricsCollector(b.metrics))
	}
	return opts
}
