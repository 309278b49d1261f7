package promcollector

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rtree"
	"github.com/hupe1980/rtree/geometry"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	mc, err := New(reg, "test")
	require.NoError(t, err)

	tree := rtree.Builder[int]().MaxChildren(4).Metrics(mc).MustBuild()
	for i := range 10 {
		tree, err = tree.AddValue(i, geometry.MustPoint(float32(i), float32(i)))
		require.NoError(t, err)
	}
	tree = tree.DeleteValue(3, geometry.MustPoint(3, 3), false)

	n, err := tree.Entries().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	assert.Equal(t, 10.0, testutil.ToFloat64(mc.inserted))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.deleted))
	assert.Positive(t, testutil.ToFloat64(mc.splits))
	assert.Equal(t, 1.0, testutil.ToFloat64(mc.queries.WithLabelValues(rtree.KindSearch)))
	assert.Equal(t, 9.0, testutil.ToFloat64(mc.emitted.WithLabelValues(rtree.KindSearch)))
}

func TestDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg, "dup")
	require.NoError(t, err)

	_, err = New(reg, "dup")
	require.Error(t, err)
}
