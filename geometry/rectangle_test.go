package geometry

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(lo0, lo1, hi0, hi1 float32) Rectangle {
	return MustRectangle([]float32{lo0, lo1}, []float32{hi0, hi1})
}

func TestNewRectangle(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  []float32
		wantErr error
	}{
		{name: "valid", lo: []float32{0, 0}, hi: []float32{1, 1}},
		{name: "degenerate", lo: []float32{1, 1}, hi: []float32{1, 1}},
		{name: "inverted", lo: []float32{2, 0}, hi: []float32{1, 1}, wantErr: ErrInvalidRectangle},
		{name: "nan", lo: []float32{float32(math.NaN()), 0}, hi: []float32{1, 1}, wantErr: ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRectangle(tt.lo, tt.hi)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.lo), r.Dimensions())
		})
	}

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := NewRectangle([]float32{0, 0}, []float32{1, 1, 1})
		var dimErr *ErrDimensionMismatch
		require.ErrorAs(t, err, &dimErr)
		assert.Equal(t, 2, dimErr.Expected)
		assert.Equal(t, 3, dimErr.Actual)
	})

	t.Run("copies input", func(t *testing.T) {
		lo := []float32{0, 0}
		r := MustRectangle(lo, []float32{1, 1})
		lo[0] = -5
		assert.Equal(t, float32(0), r.Min(0))
	})
}

func TestRectangleMeasures(t *testing.T) {
	r := rect(0, 0, 2, 3)
	assert.InDelta(t, 6.0, r.Area(), 1e-9)
	assert.InDelta(t, 10.0, r.Perimeter(), 1e-9)

	line := MustRectangle([]float32{1}, []float32{4})
	assert.InDelta(t, 3.0, line.Area(), 1e-9)
	assert.InDelta(t, 6.0, line.Perimeter(), 1e-9)

	// Margin over axis pairs: 2 * ((1+2) + (1+3) + (2+3)).
	box := MustRectangle([]float32{0, 0, 0}, []float32{1, 2, 3})
	assert.InDelta(t, 6.0, box.Area(), 1e-9)
	assert.InDelta(t, 24.0, box.Perimeter(), 1e-9)

	// Unit hypercube: six axis pairs of summed extent 2, doubled.
	cube := MustRectangle([]float32{0, 0, 0, 0}, []float32{1, 1, 1, 1})
	assert.InDelta(t, 24.0, cube.Perimeter(), 1e-9)
}

func TestRectangleUnion(t *testing.T) {
	u := rect(0, 0, 1, 1).Union(rect(2, -1, 3, 0.5))
	assert.True(t, u.Equal(rect(0, -1, 3, 1)))
}

func TestRectangleIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rectangle
		want bool
		area float64
	}{
		{name: "overlap", a: rect(0, 0, 2, 2), b: rect(1, 1, 3, 3), want: true, area: 1},
		{name: "touching edge", a: rect(0, 0, 1, 1), b: rect(1, 0, 2, 1), want: true, area: 0},
		{name: "disjoint", a: rect(0, 0, 1, 1), b: rect(2, 2, 3, 3), want: false, area: 0},
		{name: "contained", a: rect(0, 0, 4, 4), b: rect(1, 1, 2, 2), want: true, area: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
			assert.InDelta(t, tt.area, tt.a.IntersectionArea(tt.b), 1e-9)
		})
	}
}

func TestRectangleDistance(t *testing.T) {
	assert.InDelta(t, 0.0, rect(0, 0, 2, 2).Distance(rect(1, 1, 3, 3)), 1e-9)
	assert.InDelta(t, 1.0, rect(0, 0, 1, 1).Distance(rect(2, 0, 3, 1)), 1e-9)
	assert.InDelta(t, 5.0, rect(0, 0, 1, 1).Distance(rect(4, 5, 6, 6)), 1e-9)
}

func TestRectangleContains(t *testing.T) {
	r := rect(0, 0, 1, 1)
	assert.True(t, r.Contains(0.5, 0.5))
	assert.True(t, r.Contains(0, 1))
	assert.True(t, r.Contains(1, 1))
	assert.False(t, r.Contains(1.5, 0.5))
	assert.False(t, r.Contains(0.5, -0.1))
}

func TestRectangleDimensionPanics(t *testing.T) {
	r2 := rect(0, 0, 1, 1)
	r3 := MustRectangle([]float32{0, 0, 0}, []float32{1, 1, 1})
	assert.Panics(t, func() { r2.Union(r3) })
	assert.Panics(t, func() { r2.Distance(r3) })
	assert.Panics(t, func() { r2.Intersects(r3) })
}

func TestRectangleString(t *testing.T) {
	assert.Equal(t, "Rectangle[lo=(0, 0.5), hi=(1, 2)]", rect(0, 0.5, 1, 2).String())
}
