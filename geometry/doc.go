// Package geometry provides the n-dimensional geometry kernel used by the R-tree.
//
// Three value types implement Geometry:
//   - Rectangle: an axis-aligned box with lo[i] <= hi[i] on every axis
//   - Point: a degenerate Rectangle (lo == hi)
//   - Circle: a center and a radius (a ball in higher dimensions)
//
// Coordinates are stored as float32. Areas, perimeters and distances are
// accumulated in float64 to bound rounding error in high-dimension sums.
// Equality is exact per-coordinate; callers that need a tolerance must
// quantize coordinates before constructing geometries.
//
// # Usage
//
//	r := geometry.MustRectangle([]float32{0, 0}, []float32{2, 2})
//	p := geometry.MustPoint(3, 1)
//	c := geometry.MustCircle([]float32{0, 0}, 1)
//
//	d := geometry.Distance(p, r)   // 1
//	ok := geometry.Intersects(c, r) // true
package geometry
