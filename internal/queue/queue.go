// Package queue provides a value-based binary heap keyed by distance.
package queue

// Item is an entry of the priority queue.
type Item[T any] struct {
	Value    T       // Value is the payload of the item.
	Distance float64 // Distance is the priority of the item in the queue.
	seq      uint64
}

// PriorityQueue is a min- or max-heap of Items ordered by Distance.
// Items with equal Distance pop in insertion order.
type PriorityQueue[T any] struct {
	isMaxHeap bool
	items     []Item[T]
	seq       uint64
}

// NewMin initializes a new priority queue with minimum priority.
func NewMin[T any](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		isMaxHeap: false,
		items:     make([]Item[T], 0, capacity),
	}
}

// NewMax initializes a new priority queue with maximum priority.
func NewMax[T any](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		isMaxHeap: true,
		items:     make([]Item[T], 0, capacity),
	}
}

// TopItem returns the top element of the heap.
func (pq *PriorityQueue[T]) TopItem() (Item[T], bool) {
	if len(pq.items) == 0 {
		return Item[T]{}, false
	}
	return pq.items[0], true
}

// PushItem inserts a value while maintaining the heap invariant.
func (pq *PriorityQueue[T]) PushItem(value T, distance float64) {
	pq.items = append(pq.items, Item[T]{Value: value, Distance: distance, seq: pq.seq})
	pq.seq++
	pq.siftUp(len(pq.items) - 1)
}

// PushItemBounded inserts a value into a max-heap holding at most limit
// items. When the heap is full the value replaces the current top only if
// it is strictly closer. It reports whether the value was kept.
func (pq *PriorityQueue[T]) PushItemBounded(value T, distance float64, limit int) bool {
	if limit <= 0 {
		return false
	}
	if len(pq.items) < limit {
		pq.PushItem(value, distance)
		return true
	}
	if !pq.isMaxHeap || distance >= pq.items[0].Distance {
		return false
	}
	pq.items[0] = Item[T]{Value: value, Distance: distance, seq: pq.seq}
	pq.seq++
	pq.siftDown(0)
	return true
}

// PopItem removes and returns the top element while maintaining the heap invariant.
func (pq *PriorityQueue[T]) PopItem() (Item[T], bool) {
	n := len(pq.items)
	if n == 0 {
		return Item[T]{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = Item[T]{}
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

func (pq *PriorityQueue[T]) less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.Distance != b.Distance {
		if pq.isMaxHeap {
			return a.Distance > b.Distance
		}
		return a.Distance < b.Distance
	}
	return a.seq < b.seq
}

func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue[T]) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

// Reset clears the priority queue for reuse.
func (pq *PriorityQueue[T]) Reset() {
	clear(pq.items)
	pq.items = pq.items[:0]
	pq.seq = 0
}
