// Package geoconv converts values of the go-geom and golang/geo packages
// into rtree geometries.
package geoconv

import (
	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/twpayne/go-geom"

	"github.com/hupe1980/rtree/geometry"
)

// ErrEmptyBounds is returned for empty bounds, empty geometries and empty
// rectangles, none of which have a bounding rectangle.
var ErrEmptyBounds = errors.New("geoconv: empty bounds")

// FromBounds converts go-geom bounds into a rectangle with one axis per
// ordinate of the bounds' layout.
func FromBounds(b *geom.Bounds) (geometry.Rectangle, error) {
	if b == nil || b.IsEmpty() {
		return geometry.Rectangle{}, ErrEmptyBounds
	}
	stride := b.Layout().Stride()
	lo := make([]float32, stride)
	hi := make([]float32, stride)
	for i := range stride {
		lo[i] = float32(b.Min(i))
		hi[i] = float32(b.Max(i))
	}
	return geometry.NewRectangle(lo, hi)
}

// FromGeom converts a go-geom geometry. Points become points; every other
// geometry is represented by its bounds.
func FromGeom(g geom.T) (geometry.Geometry, error) {
	if g == nil || len(g.FlatCoords()) == 0 {
		return nil, ErrEmptyBounds
	}
	if p, ok := g.(*geom.Point); ok {
		flat := p.FlatCoords()
		coords := make([]float32, len(flat))
		for i, c := range flat {
			coords[i] = float32(c)
		}
		return geometry.NewPoint(coords...)
	}
	r, err := FromBounds(g.Bounds())
	if err != nil {
		return nil, errors.Wrapf(err, "%T", g)
	}
	return r, nil
}

// FromR2Rect converts a planar rectangle.
func FromR2Rect(r r2.Rect) (geometry.Rectangle, error) {
	if r.IsEmpty() {
		return geometry.Rectangle{}, ErrEmptyBounds
	}
	return geometry.NewRectangle(
		[]float32{float32(r.X.Lo), float32(r.Y.Lo)},
		[]float32{float32(r.X.Hi), float32(r.Y.Hi)},
	)
}

// FromR2Point converts a planar point.
func FromR2Point(p r2.Point) (geometry.Point, error) {
	return geometry.NewPoint(float32(p.X), float32(p.Y))
}

// FromR3Vector converts a three-dimensional vector into a point.
func FromR3Vector(v r3.Vector) (geometry.Point, error) {
	return geometry.NewPoint(float32(v.X), float32(v.Y), float32(v.Z))
}
