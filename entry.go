package rtree

import (
	"fmt"

	"github.com/hupe1980/rtree/geometry"
)

// Entry is an immutable (value, geometry) pair stored in a leaf.
type Entry[V comparable] struct {
	value    V
	geometry geometry.Geometry
}

// NewEntry creates an entry.
func NewEntry[V comparable](value V, g geometry.Geometry) Entry[V] {
	return Entry[V]{value: value, geometry: g}
}

// Value returns the entry's value.
func (e Entry[V]) Value() V { return e.value }

// Geometry returns the entry's geometry.
func (e Entry[V]) Geometry() geometry.Geometry { return e.geometry }

// MBR returns the bounding rectangle of the entry's geometry.
func (e Entry[V]) MBR() geometry.Rectangle { return e.geometry.MBR() }

// Equal reports whether both entries have equal values and equal geometries.
func (e Entry[V]) Equal(o Entry[V]) bool {
	if e.value != o.value {
		return false
	}
	if e.geometry == nil || o.geometry == nil {
		return e.geometry == nil && o.geometry == nil
	}
	return e.geometry.Equal(o.geometry)
}

func (e Entry[V]) String() string {
	return fmt.Sprintf("Entry[value=%v, geometry=%v]", e.value, e.geometry)
}
