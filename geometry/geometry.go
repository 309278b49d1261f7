package geometry

import "math"

// Geometry is implemented by Point, Rectangle and Circle.
//
// Every variant supplies its own minimal bounding rectangle. The set of
// variants is closed; Distance and Intersects dispatch on it.
type Geometry interface {
	// MBR returns the minimal bounding rectangle of the geometry.
	MBR() Rectangle

	// Dimensions returns the number of axes.
	Dimensions() int

	// Distance returns the Euclidean distance from the geometry to r
	// (0 when they intersect).
	Distance(r Rectangle) float64

	// Intersects reports whether the geometry intersects r.
	Intersects(r Rectangle) bool

	// Equal reports exact equality with another geometry of the same variant.
	Equal(other Geometry) bool

	sealed()
}

var (
	_ Geometry = Rectangle{}
	_ Geometry = Point{}
	_ Geometry = Circle{}
)

// Distance returns the distance between two geometries. Circles use their
// true shape; points and rectangles are exact boxes.
func Distance(a, b Geometry) float64 {
	if c, ok := a.(Circle); ok {
		return c.distanceTo(b)
	}
	if c, ok := b.(Circle); ok {
		return c.distanceTo(a)
	}
	return a.MBR().Distance(b.MBR())
}

// Intersects reports whether two geometries intersect.
func Intersects(a, b Geometry) bool {
	return Distance(a, b) == 0
}

// gapSquared returns the squared gap between [lo1, hi1] and [lo2, hi2].
func gapSquared(lo1, hi1, lo2, hi2 float32) float64 {
	var gap float64
	switch {
	case lo2 > hi1:
		gap = float64(lo2) - float64(hi1)
	case lo1 > hi2:
		gap = float64(lo1) - float64(hi2)
	default:
		return 0
	}
	return gap * gap
}

func euclidean(a, b []float32) float64 {
	mustSameDimensions(len(a), len(b))
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

func validateCoords(coords []float32) error {
	for _, c := range coords {
		if c != c {
			return ErrInvalidCoordinate
		}
	}
	return nil
}
