package rtree

import (
	"context"
	"iter"
	"math"
	"sync/atomic"
	"time"
)

// Unbounded requests every remaining entry.
const Unbounded = math.MaxInt

// Query kinds reported to the MetricsCollector and the Logger.
const (
	KindSearch  = "search"
	KindNearest = "nearest"
)

// source produces the entries of one query. advance returns false when the
// traversal is exhausted or cancelled() reported true at a checkpoint.
type source[V comparable] interface {
	advance(cancelled func() bool) (Entry[V], bool)
}

// Iterator is a lazy, demand-driven and cancellable sequence of query
// results. No traversal happens until entries are requested, and each
// request does only the work needed to produce the requested entries.
//
// An Iterator is single-consumer and cannot be restarted. Cancel may be
// called from any goroutine, including from inside the onNext callback.
type Iterator[V comparable] struct {
	src  source[V]
	kind string
	opts *options

	cancelled atomic.Bool
	reported  atomic.Bool
	emitted   atomic.Int64
	elapsed   atomic.Int64
	done      bool
}

func newIterator[V comparable](t *Tree[V], kind string, src source[V]) *Iterator[V] {
	return &Iterator[V]{src: src, kind: kind, opts: t.opts}
}

// Request emits at most n further entries to onNext and returns how many
// were emitted. Request(0, ...) performs no traversal. Passing Unbounded
// drains the sequence.
func (it *Iterator[V]) Request(n int, onNext func(Entry[V])) int {
	if n <= 0 || it.done || it.Cancelled() {
		return 0
	}

	start := time.Now()
	count := 0
	for count < n {
		e, ok := it.src.advance(it.Cancelled)
		if it.Cancelled() {
			break
		}
		if !ok {
			it.done = true
			break
		}
		count++
		it.emitted.Add(1)
		onNext(e)
		if it.Cancelled() {
			break
		}
	}
	it.elapsed.Add(int64(time.Since(start)))

	if it.done || it.Cancelled() {
		it.report()
	}
	return count
}

// Next returns the next entry. ok is false once the sequence is exhausted
// or cancelled.
func (it *Iterator[V]) Next() (e Entry[V], ok bool) {
	it.Request(1, func(x Entry[V]) {
		e, ok = x, true
	})
	return e, ok
}

// Cancel stops the sequence. No entry is emitted after Cancel returns and
// Done never becomes true.
func (it *Iterator[V]) Cancel() {
	if it.cancelled.CompareAndSwap(false, true) {
		it.report()
	}
}

// Cancelled reports whether Cancel was called.
func (it *Iterator[V]) Cancelled() bool { return it.cancelled.Load() }

// Done reports whether the sequence completed. It becomes true on the first
// request that finds no further entries.
func (it *Iterator[V]) Done() bool { return it.done }

// All returns the remaining entries as an iter.Seq. Stopping the range
// loop early, or cancelling ctx, cancels the iterator.
func (it *Iterator[V]) All(ctx context.Context) iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		stop := it.watch(ctx)
		defer stop()

		for {
			e, ok := it.Next()
			if !ok {
				return
			}
			if !yield(e) {
				it.Cancel()
				return
			}
		}
	}
}

// Collect drains the iterator into a slice. If ctx is cancelled first the
// entries collected so far are returned with ctx.Err().
func (it *Iterator[V]) Collect(ctx context.Context) ([]Entry[V], error) {
	stop := it.watch(ctx)
	defer stop()

	var out []Entry[V]
	it.Request(Unbounded, func(e Entry[V]) {
		out = append(out, e)
	})
	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// Count drains the iterator and returns the number of entries.
func (it *Iterator[V]) Count(ctx context.Context) (int, error) {
	stop := it.watch(ctx)
	defer stop()

	n := it.Request(Unbounded, func(Entry[V]) {})
	return n, ctx.Err()
}

// watch cancels the iterator when ctx is done. AfterFunc runs its callback
// in a new goroutine, so an already cancelled ctx is handled synchronously.
func (it *Iterator[V]) watch(ctx context.Context) (stop func() bool) {
	if ctx.Err() != nil {
		it.Cancel()
	}
	return context.AfterFunc(ctx, it.Cancel)
}

func (it *Iterator[V]) report() {
	if !it.reported.CompareAndSwap(false, true) {
		return
	}
	emitted := int(it.emitted.Load())
	it.opts.metricsCollector.RecordSearch(it.kind, emitted, time.Duration(it.elapsed.Load()))
	it.opts.logger.LogSearch(logCtx(), it.kind, emitted, it.Cancelled())
}

// emptySource yields nothing.
type emptySource[V comparable] struct{}

func (emptySource[V]) advance(func() bool) (Entry[V], bool) {
	var zero Entry[V]
	return zero, false
}
