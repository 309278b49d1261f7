package geometry

import (
	"fmt"
	"slices"
)

// Point is a degenerate rectangle whose lower and upper corners coincide.
type Point struct {
	mbr Rectangle
}

// NewPoint creates a point. The coordinates are copied.
func NewPoint(coords ...float32) (Point, error) {
	if len(coords) == 0 {
		return Point{}, &ErrDimensionMismatch{Expected: 1, Actual: 0}
	}
	if err := validateCoords(coords); err != nil {
		return Point{}, err
	}
	c := slices.Clone(coords)
	return Point{mbr: Rectangle{lo: c, hi: c}}, nil
}

// MustPoint is like NewPoint but panics on error.
func MustPoint(coords ...float32) Point {
	p, err := NewPoint(coords...)
	if err != nil {
		panic(err)
	}
	return p
}

func (Point) sealed() {}

// Dimensions returns the number of axes.
func (p Point) Dimensions() int { return len(p.mbr.lo) }

// Coord returns the coordinate on axis i.
func (p Point) Coord(i int) float32 { return p.mbr.lo[i] }

// Coords returns a copy of the coordinates.
func (p Point) Coords() []float32 { return slices.Clone(p.mbr.lo) }

// MBR returns the degenerate bounding rectangle of p.
func (p Point) MBR() Rectangle { return p.mbr }

// Distance returns the distance from p to r.
func (p Point) Distance(r Rectangle) float64 { return p.mbr.Distance(r) }

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(o Point) float64 { return euclidean(p.mbr.lo, o.mbr.lo) }

// Intersects reports whether p lies inside r.
func (p Point) Intersects(r Rectangle) bool { return p.mbr.Intersects(r) }

// Equal reports whether other is a Point with identical coordinates.
func (p Point) Equal(other Geometry) bool {
	o, ok := other.(Point)
	if !ok {
		return false
	}
	return slices.Equal(p.mbr.lo, o.mbr.lo)
}

func (p Point) String() string {
	return fmt.Sprintf("Point%s", formatCoords(p.mbr.lo))
}
