package geometry

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Rectangle is an immutable axis-aligned box. The zero value has no
// dimensions and is only useful as a "no rectangle" marker.
type Rectangle struct {
	lo, hi []float32
}

// NewRectangle creates a rectangle from its lower and upper corners.
// Both slices are copied.
func NewRectangle(lo, hi []float32) (Rectangle, error) {
	if len(lo) == 0 || len(lo) != len(hi) {
		return Rectangle{}, &ErrDimensionMismatch{Expected: len(lo), Actual: len(hi)}
	}
	if err := validateCoords(lo); err != nil {
		return Rectangle{}, err
	}
	if err := validateCoords(hi); err != nil {
		return Rectangle{}, err
	}
	for i := range lo {
		if lo[i] > hi[i] {
			return Rectangle{}, errors.Wrapf(ErrInvalidRectangle, "axis %d: %g > %g", i, lo[i], hi[i])
		}
	}
	return Rectangle{lo: slices.Clone(lo), hi: slices.Clone(hi)}, nil
}

// MustRectangle is like NewRectangle but panics on error.
func MustRectangle(lo, hi []float32) Rectangle {
	r, err := NewRectangle(lo, hi)
	if err != nil {
		panic(err)
	}
	return r
}

func (Rectangle) sealed() {}

// Dimensions returns the number of axes.
func (r Rectangle) Dimensions() int { return len(r.lo) }

// IsZero reports whether r is the zero Rectangle.
func (r Rectangle) IsZero() bool { return len(r.lo) == 0 }

// Min returns the lower bound on axis i.
func (r Rectangle) Min(i int) float32 { return r.lo[i] }

// Max returns the upper bound on axis i.
func (r Rectangle) Max(i int) float32 { return r.hi[i] }

// Lo returns a copy of the lower corner.
func (r Rectangle) Lo() []float32 { return slices.Clone(r.lo) }

// Hi returns a copy of the upper corner.
func (r Rectangle) Hi() []float32 { return slices.Clone(r.hi) }

// MBR returns r itself.
func (r Rectangle) MBR() Rectangle { return r }

// Area returns the product of the per-axis extents (the volume for
// dimensions >= 3).
func (r Rectangle) Area() float64 {
	area := 1.0
	for i := range r.lo {
		area *= float64(r.hi[i]) - float64(r.lo[i])
	}
	return area
}

// Perimeter returns the margin of r: twice the sum, over all unordered axis
// pairs, of the two axes' extents. The factor of two is deliberate and keeps
// the two-dimensional margin equal to the ordinary perimeter 2*(w+h).
// Margins are only compared against each other, so the scale never changes
// a split. A one-dimensional rectangle has no axis pairs and its margin is
// defined as 2*extent.
func (r Rectangle) Perimeter() float64 {
	d := len(r.lo)
	var sum float64
	for i := range r.lo {
		sum += float64(r.hi[i]) - float64(r.lo[i])
	}
	if d == 1 {
		return 2 * sum
	}
	// Each axis appears in d-1 pairs.
	return 2 * float64(d-1) * sum
}

// Union returns the smallest rectangle containing r and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	mustSameDimensions(len(r.lo), len(o.lo))
	lo := make([]float32, len(r.lo))
	hi := make([]float32, len(r.hi))
	for i := range r.lo {
		lo[i] = min(r.lo[i], o.lo[i])
		hi[i] = max(r.hi[i], o.hi[i])
	}
	return Rectangle{lo: lo, hi: hi}
}

// Intersects reports whether r and o overlap on every axis. Touching
// boundaries count as intersecting.
//
// This is the axis-aligned test; exact overlap of general convex polytopes
// is much harder in high dimensions and is not attempted.
func (r Rectangle) Intersects(o Rectangle) bool {
	mustSameDimensions(len(r.lo), len(o.lo))
	for i := range r.lo {
		if r.lo[i] > o.hi[i] || o.lo[i] > r.hi[i] {
			return false
		}
	}
	return true
}

// IntersectionArea returns the area of the overlap of r and o, or 0 when
// they do not intersect.
func (r Rectangle) IntersectionArea(o Rectangle) float64 {
	if !r.Intersects(o) {
		return 0
	}
	area := 1.0
	for i := range r.lo {
		lo := max(r.lo[i], o.lo[i])
		hi := min(r.hi[i], o.hi[i])
		area *= float64(hi) - float64(lo)
	}
	return area
}

// Distance returns the Euclidean distance between the nearest faces of r and
// o, or 0 if they intersect.
func (r Rectangle) Distance(o Rectangle) float64 {
	mustSameDimensions(len(r.lo), len(o.lo))
	var sum float64
	for i := range r.lo {
		sum += gapSquared(r.lo[i], r.hi[i], o.lo[i], o.hi[i])
	}
	return math.Sqrt(sum)
}

// Contains reports whether the point lies inside r, boundaries included.
func (r Rectangle) Contains(point ...float32) bool {
	mustSameDimensions(len(r.lo), len(point))
	for i, c := range point {
		if c < r.lo[i] || c > r.hi[i] {
			return false
		}
	}
	return true
}

// Equal reports whether other is a Rectangle with identical corners.
func (r Rectangle) Equal(other Geometry) bool {
	o, ok := other.(Rectangle)
	if !ok {
		return false
	}
	return slices.Equal(r.lo, o.lo) && slices.Equal(r.hi, o.hi)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle[lo=%s, hi=%s]", formatCoords(r.lo), formatCoords(r.hi))
}

func formatCoords(c []float32) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range c {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteByte(')')
	return sb.String()
}
