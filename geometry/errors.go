package geometry

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidRectangle is returned when a rectangle has lo[i] > hi[i] on some axis.
	ErrInvalidRectangle = errors.New("geometry: rectangle lower bound exceeds upper bound")

	// ErrInvalidRadius is returned when a circle radius is negative or NaN.
	ErrInvalidRadius = errors.New("geometry: radius must be a non-negative number")

	// ErrInvalidCoordinate is returned when a coordinate is NaN.
	ErrInvalidCoordinate = errors.New("geometry: coordinate is NaN")
)

// ErrDimensionMismatch indicates coordinate vectors of different (or zero) length.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("geometry: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func mustSameDimensions(a, b int) {
	if a != b {
		panic(&ErrDimensionMismatch{Expected: a, Actual: b})
	}
}
