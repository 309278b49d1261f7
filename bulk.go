package rtree

import (
	"cmp"
	"context"
	"math"
	"runtime"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/rtree/geometry"
)

// Load builds a tree holding entries with Sort-Tile-Recursive packing.
// Packed trees have far less node overlap than trees grown by repeated
// insertion, and building them is much faster.
//
// Nodes are filled to LoadingFactor of MaxChildren where the count allows;
// every non-root node ends up with between MinChildren and MaxChildren
// children. Cancelling ctx aborts the load with ctx.Err().
func (b TreeBuilder[V]) Load(ctx context.Context, entries []Entry[V]) (*Tree[V], error) {
	start := time.Now()
	tree, err := b.Build()
	if err != nil {
		return nil, err
	}

	root, err := tree.pack(ctx, entries, b.loadingFactor)
	tree.opts.metricsCollector.RecordBulkLoad(len(entries), time.Since(start), err)
	if err != nil {
		tree.opts.logger.LogBulkLoad(ctx, len(entries), 0, err)
		return nil, err
	}

	result := tree.with(root, len(entries))
	tree.opts.logger.LogBulkLoad(ctx, len(entries), result.Depth(), nil)
	return result, nil
}

// packCapacity returns the node size targeted by pack. Any capacity of at
// least 2*minChildren-1 lets balanced chunking keep every chunk at or above
// minChildren.
func packCapacity(c *Context, loadingFactor float64) int {
	capacity := int(math.Round(loadingFactor * float64(c.maxChildren)))
	return min(c.maxChildren, max(capacity, 2*c.minChildren-1, 2))
}

func (t *Tree[V]) pack(ctx context.Context, entries []Entry[V], loadingFactor float64) (Node[V], error) {
	for i, e := range entries {
		if err := t.checkDimensions(e.geometry); err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
	}
	if len(entries) == 0 {
		return nil, ctx.Err()
	}

	c := t.context
	capacity := packCapacity(c, loadingFactor)

	items := slices.Clone(entries)
	if err := strOrder(ctx, items, Entry[V].MBR, c.dimensions, capacity); err != nil {
		return nil, err
	}
	nodes, err := packLevel(ctx, items, capacity, func(chunk []Entry[V]) Node[V] {
		return newLeaf(chunk)
	})
	if err != nil {
		return nil, err
	}

	for len(nodes) > 1 {
		if err := strOrder(ctx, nodes, Node[V].MBR, c.dimensions, capacity); err != nil {
			return nil, err
		}
		nodes, err = packLevel(ctx, nodes, capacity, func(chunk []Node[V]) Node[V] {
			return newNonLeaf(chunk)
		})
		if err != nil {
			return nil, err
		}
	}
	return nodes[0], nil
}

// strOrder sorts items in place into Sort-Tile-Recursive order: by center
// on the first axis, then each vertical slab by the next axis, and so on.
// Slabs of the first axis are ordered concurrently.
func strOrder[T any](ctx context.Context, items []T, mbr func(T) geometry.Rectangle, dims, capacity int) error {
	if len(items) <= capacity {
		return ctx.Err()
	}

	slabs := strSort(items, mbr, 0, dims, capacity)
	if len(slabs) == 0 {
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, slab := range slabs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			strTile(slab, mbr, 1, dims, capacity)
			return nil
		})
	}
	return g.Wait()
}

// strSort orders items on axis and returns the slabs to be ordered on the
// next axis, or nil on the last axis.
func strSort[T any](items []T, mbr func(T) geometry.Rectangle, axis, dims, capacity int) [][]T {
	center := func(it T) float64 {
		r := mbr(it)
		return (float64(r.Min(axis)) + float64(r.Max(axis))) / 2
	}
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(center(a), center(b))
	})
	if axis == dims-1 {
		return nil
	}

	n := len(items)
	pages := (n + capacity - 1) / capacity
	perAxis := int(math.Ceil(math.Pow(float64(pages), 1/float64(dims-axis))))
	slabSize := capacity * ((pages + perAxis - 1) / perAxis)

	var slabs [][]T
	for lo := 0; lo < n; lo += slabSize {
		slabs = append(slabs, items[lo:min(lo+slabSize, n)])
	}
	return slabs
}

func strTile[T any](items []T, mbr func(T) geometry.Rectangle, axis, dims, capacity int) {
	if len(items) <= capacity || axis >= dims {
		return
	}
	for _, slab := range strSort(items, mbr, axis, dims, capacity) {
		strTile(slab, mbr, axis+1, dims, capacity)
	}
}

// packLevel cuts items into ceil(n/capacity) consecutive chunks whose sizes
// differ by at most one and builds one node per chunk.
func packLevel[T any, V comparable](ctx context.Context, items []T, capacity int, build func([]T) Node[V]) ([]Node[V], error) {
	n := len(items)
	groups := (n + capacity - 1) / capacity
	base, extra := n/groups, n%groups

	bounds := make([]int, groups+1)
	for i := range groups {
		size := base
		if i < extra {
			size++
		}
		bounds[i+1] = bounds[i] + size
	}

	nodes := make([]Node[V], groups)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	const batch = 256
	for lo := 0; lo < groups; lo += batch {
		hi := min(lo+batch, groups)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				nodes[i] = build(slices.Clip(items[bounds[i]:bounds[i+1]]))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}
