package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinQueue(t *testing.T) {
	pq := NewMin[string](4)
	pq.PushItem("c", 3)
	pq.PushItem("a", 1)
	pq.PushItem("b", 2)
	pq.PushItem("a2", 1)

	top, ok := pq.TopItem()
	require.True(t, ok)
	assert.Equal(t, "a", top.Value)

	var got []string
	for pq.Len() > 0 {
		item, _ := pq.PopItem()
		got = append(got, item.Value)
	}
	// Equal distances pop in insertion order.
	assert.Equal(t, []string{"a", "a2", "b", "c"}, got)

	_, ok = pq.PopItem()
	assert.False(t, ok)
}

func TestMaxQueueBounded(t *testing.T) {
	pq := NewMax[int](3)
	for i, d := range []float64{5, 1, 4, 2, 3} {
		pq.PushItemBounded(i, d, 3)
	}
	require.Equal(t, 3, pq.Len())

	top, _ := pq.TopItem()
	assert.Equal(t, 3.0, top.Distance)

	assert.False(t, pq.PushItemBounded(99, 3, 3), "equal distance is not strictly closer")
	assert.True(t, pq.PushItemBounded(99, 0.5, 3))
	top, _ = pq.TopItem()
	assert.Equal(t, 2.0, top.Distance)

	assert.False(t, pq.PushItemBounded(1, 0, 0))
}

func TestReset(t *testing.T) {
	pq := NewMin[int](0)
	pq.PushItem(2, 2)
	pq.PushItem(1, 1)

	pq.Reset()
	assert.Equal(t, 0, pq.Len())
	_, ok := pq.TopItem()
	assert.False(t, ok)

	pq.PushItem(3, 3)
	item, ok := pq.PopItem()
	require.True(t, ok)
	assert.Equal(t, 3, item.Value)
}
