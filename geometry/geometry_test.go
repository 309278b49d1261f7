package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint(t *testing.T) {
	p := MustPoint(1, 2)
	assert.Equal(t, 2, p.Dimensions())
	assert.Equal(t, float32(2), p.Coord(1))
	assert.True(t, p.MBR().Equal(rect(1, 2, 1, 2)))
	assert.InDelta(t, 0.0, p.MBR().Area(), 1e-9)

	assert.InDelta(t, 5.0, MustPoint(0, 0).DistanceTo(MustPoint(3, 4)), 1e-9)
	assert.True(t, p.Intersects(rect(0, 0, 1, 2)))
	assert.False(t, p.Intersects(rect(0, 0, 0.5, 0.5)))

	assert.True(t, p.Equal(MustPoint(1, 2)))
	assert.False(t, p.Equal(rect(1, 2, 1, 2)))
	assert.Equal(t, "Point(1, 2)", p.String())

	_, err := NewPoint()
	require.Error(t, err)
}

func TestCircle(t *testing.T) {
	c := MustCircle([]float32{0, 0}, 1)
	assert.True(t, c.MBR().Equal(rect(-1, -1, 1, 1)))

	t.Run("rectangle", func(t *testing.T) {
		assert.InDelta(t, 1.0, c.Distance(rect(2, -1, 3, 1)), 1e-6)
		assert.True(t, c.Intersects(rect(0.5, 0.5, 2, 2)))
		// The corner of the box is outside the circle even though the MBRs overlap.
		assert.False(t, c.Intersects(rect(0.8, 0.8, 2, 2)))
	})

	t.Run("circle", func(t *testing.T) {
		assert.True(t, c.IntersectsCircle(MustCircle([]float32{2, 0}, 1)))
		assert.False(t, c.IntersectsCircle(MustCircle([]float32{3, 0}, 1)))
		assert.InDelta(t, 1.0, Distance(c, MustCircle([]float32{3, 0}, 1)), 1e-6)
	})

	t.Run("point", func(t *testing.T) {
		assert.True(t, c.IntersectsPoint(MustPoint(0.5, 0.5)))
		assert.False(t, c.IntersectsPoint(MustPoint(0.8, 0.8)))
		assert.InDelta(t, 4.0, Distance(MustPoint(5, 0), c), 1e-6)
	})

	t.Run("invalid radius", func(t *testing.T) {
		_, err := NewCircle([]float32{0, 0}, -1)
		require.ErrorIs(t, err, ErrInvalidRadius)
		_, err = NewCircle([]float32{0, 0}, float32(math.NaN()))
		require.ErrorIs(t, err, ErrInvalidRadius)
	})
}

func TestDistanceDispatch(t *testing.T) {
	tests := []struct {
		name string
		a, b Geometry
		want float64
	}{
		{name: "point point", a: MustPoint(0, 0), b: MustPoint(3, 4), want: 5},
		{name: "point rectangle", a: MustPoint(0, 0), b: rect(3, 4, 5, 5), want: 5},
		{name: "rectangle rectangle", a: rect(0, 0, 1, 1), b: rect(1, 1, 2, 2), want: 0},
		{name: "circle rectangle", a: MustCircle([]float32{0, 0}, 2), b: rect(3, 4, 5, 5), want: 3},
		{name: "rectangle circle", a: rect(3, 4, 5, 5), b: MustCircle([]float32{0, 0}, 2), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), 1e-6)
			assert.Equal(t, tt.want == 0, Intersects(tt.a, tt.b))
		})
	}
}

func TestNormalizeLongitude(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{180, -180},
		{181, -179},
		{541, -179},
		{-181, 179},
		{-90, -90},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeLongitude(tt.in), 1e-9, "lon %v", tt.in)
	}
}

func TestGeographic(t *testing.T) {
	p, err := PointGeographic(181, 10)
	require.NoError(t, err)
	assert.Equal(t, float32(-179), p.Coord(0))

	r, err := RectangleGeographic(10, -10, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, float32(10), r.Min(0))
	assert.Equal(t, float32(365), r.Max(0))
	assert.Equal(t, float32(-10), r.Min(1))
}
