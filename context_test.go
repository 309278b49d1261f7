package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	tests := []struct {
		name      string
		dims      int
		min, max  int
		selector  Selector
		splitter  Splitter
		wantField string
	}{
		{"min 1 max 3", 2, 1, 3, SelectorMinimalAreaIncrease{}, SplitterQuadratic{}, ""},
		{"min 2 max 3", 2, 2, 3, SelectorMinimalAreaIncrease{}, SplitterQuadratic{}, ""},
		{"min 2 max 4", 3, 2, 4, SelectorRStar{}, SplitterRStar{}, ""},
		{"one dimension", 1, 2, 5, SelectorRStar{}, SplitterRStar{}, ""},
		{"zero dimensions", 0, 2, 4, SelectorRStar{}, SplitterRStar{}, "dimensions"},
		{"max too small", 2, 1, 2, SelectorRStar{}, SplitterRStar{}, "maxChildren"},
		{"min too large", 2, 3, 4, SelectorRStar{}, SplitterRStar{}, "minChildren"},
		{"min zero", 2, 0, 4, SelectorRStar{}, SplitterRStar{}, "minChildren"},
		{"max below min", 2, 4, 3, SelectorRStar{}, SplitterRStar{}, "maxChildren"},
		{"nil selector", 2, 2, 4, nil, SplitterRStar{}, "selector"},
		{"nil splitter", 2, 2, 4, SelectorRStar{}, nil, "splitter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContext(tt.dims, tt.min, tt.max, tt.selector, tt.splitter)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.dims, c.Dimensions())
				assert.Equal(t, tt.min, c.MinChildren())
				assert.Equal(t, tt.max, c.MaxChildren())
				assert.Equal(t, tt.selector, c.Selector())
				assert.Equal(t, tt.splitter, c.Splitter())
				return
			}

			require.Error(t, err)
			assert.Nil(t, c)

			var ic *ErrInvalidContext
			require.ErrorAs(t, err, &ic)
			assert.Equal(t, tt.wantField, ic.Field)
		})
	}
}

func TestBuilder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := Builder[string]().Context()
		require.NoError(t, err)

		assert.Equal(t, 2, c.Dimensions())
		assert.Equal(t, 2, c.MinChildren())
		assert.Equal(t, 4, c.MaxChildren())
		assert.IsType(t, SelectorMinimalAreaIncrease{}, c.Selector())
		assert.IsType(t, SplitterQuadratic{}, c.Splitter())
	})

	t.Run("derived min children", func(t *testing.T) {
		tests := map[int]int{3: 1, 4: 2, 8: 3, 10: 4, 32: 13}
		for maxChildren, want := range tests {
			c, err := Builder[string]().MaxChildren(maxChildren).Context()
			require.NoError(t, err)
			assert.Equal(t, want, c.MinChildren(), "maxChildren %d", maxChildren)
		}
	})

	t.Run("star", func(t *testing.T) {
		c, err := Builder[string]().Star().Context()
		require.NoError(t, err)
		assert.IsType(t, SelectorRStar{}, c.Selector())
		assert.IsType(t, SplitterRStar{}, c.Splitter())

		c, err = Builder[string]().Star().Splitter(SplitterQuadratic{}).Context()
		require.NoError(t, err)
		assert.IsType(t, SelectorRStar{}, c.Selector())
		assert.IsType(t, SplitterQuadratic{}, c.Splitter())
	})

	t.Run("immutable", func(t *testing.T) {
		base := Builder[string]().MaxChildren(8)
		_ = base.MaxChildren(16).Dimensions(3)

		c, err := base.Context()
		require.NoError(t, err)
		assert.Equal(t, 8, c.MaxChildren())
		assert.Equal(t, 2, c.Dimensions())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Builder[string]().MinChildren(3).MaxChildren(4).Build()
		require.Error(t, err)

		assert.Panics(t, func() {
			Builder[string]().Dimensions(0).MustBuild()
		})
	})

	t.Run("custom", func(t *testing.T) {
		tree := Builder[string]().
			Dimensions(3).
			MinChildren(1).
			MaxChildren(4).
			Selector(SelectorMinimalOverlapArea{}).
			Splitter(SplitterRStar{}).
			MustBuild()

		c := tree.Context()
		assert.Equal(t, 3, c.Dimensions())
		assert.Equal(t, 1, c.MinChildren())
		assert.IsType(t, SelectorMinimalOverlapArea{}, c.Selector())
	})
}
