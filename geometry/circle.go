package geometry

import (
	"fmt"
	"math"
	"slices"
)

// Circle is a center and a radius. In dimensions other than two it is a
// ball; the name follows the two-dimensional case.
type Circle struct {
	center []float32
	radius float32
	mbr    Rectangle
}

// NewCircle creates a circle. The center is copied.
func NewCircle(center []float32, radius float32) (Circle, error) {
	if len(center) == 0 {
		return Circle{}, &ErrDimensionMismatch{Expected: 1, Actual: 0}
	}
	if err := validateCoords(center); err != nil {
		return Circle{}, err
	}
	if radius < 0 || radius != radius {
		return Circle{}, ErrInvalidRadius
	}
	c := slices.Clone(center)
	lo := make([]float32, len(c))
	hi := make([]float32, len(c))
	for i, v := range c {
		lo[i] = v - radius
		hi[i] = v + radius
	}
	return Circle{center: c, radius: radius, mbr: Rectangle{lo: lo, hi: hi}}, nil
}

// MustCircle is like NewCircle but panics on error.
func MustCircle(center []float32, radius float32) Circle {
	c, err := NewCircle(center, radius)
	if err != nil {
		panic(err)
	}
	return c
}

func (Circle) sealed() {}

// Dimensions returns the number of axes.
func (c Circle) Dimensions() int { return len(c.center) }

// Coord returns the center coordinate on axis i.
func (c Circle) Coord(i int) float32 { return c.center[i] }

// Center returns a copy of the center.
func (c Circle) Center() []float32 { return slices.Clone(c.center) }

// Radius returns the radius.
func (c Circle) Radius() float32 { return c.radius }

// MBR returns center ± radius on every axis.
func (c Circle) MBR() Rectangle { return c.mbr }

// Distance returns max(0, distance(center, r) - radius).
func (c Circle) Distance(r Rectangle) float64 {
	mustSameDimensions(len(c.center), r.Dimensions())
	var sum float64
	for i, v := range c.center {
		sum += gapSquared(v, v, r.lo[i], r.hi[i])
	}
	return math.Max(0, math.Sqrt(sum)-float64(c.radius))
}

// Intersects reports whether the circle touches r.
func (c Circle) Intersects(r Rectangle) bool { return c.Distance(r) == 0 }

// IntersectsCircle reports whether the two circles overlap.
func (c Circle) IntersectsCircle(o Circle) bool {
	return euclidean(c.center, o.center) <= float64(c.radius)+float64(o.radius)
}

// IntersectsPoint reports whether p lies within the circle.
func (c Circle) IntersectsPoint(p Point) bool {
	return euclidean(c.center, p.mbr.lo) <= float64(c.radius)
}

func (c Circle) distanceTo(g Geometry) float64 {
	switch o := g.(type) {
	case Circle:
		return math.Max(0, euclidean(c.center, o.center)-float64(c.radius)-float64(o.radius))
	case Point:
		return math.Max(0, euclidean(c.center, o.mbr.lo)-float64(c.radius))
	default:
		return c.Distance(g.MBR())
	}
}

// Equal reports whether other is a Circle with the same center and radius.
func (c Circle) Equal(other Geometry) bool {
	o, ok := other.(Circle)
	if !ok {
		return false
	}
	return c.radius == o.radius && slices.Equal(c.center, o.center)
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle[center=%s, radius=%g]", formatCoords(c.center), c.radius)
}
