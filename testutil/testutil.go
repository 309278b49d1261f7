package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/rtree/geometry"
)

// SearchResult is the index of a geometry in a generated dataset and its
// distance to a query.
type SearchResult struct {
	ID       int
	Distance float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fillLocked(dst, minVal, maxVal)
}

func (r *RNG) fillLocked(dst []float32, minVal, maxVal float32) {
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// Points generates num points with coordinates in [0, extent).
func (r *RNG) Points(num, dimensions int, extent float32) []geometry.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geometry.Point, num)
	coords := make([]float32, dimensions)
	for i := range num {
		r.fillLocked(coords, 0, extent)
		points[i] = geometry.MustPoint(coords...)
	}
	return points
}

// Rectangles generates num rectangles with lower corners in [0, extent)
// and side lengths in [0, maxSide).
func (r *RNG) Rectangles(num, dimensions int, extent, maxSide float32) []geometry.Rectangle {
	r.mu.Lock()
	defer r.mu.Unlock()

	rects := make([]geometry.Rectangle, num)
	lo := make([]float32, dimensions)
	hi := make([]float32, dimensions)
	for i := range num {
		r.fillLocked(lo, 0, extent)
		r.fillLocked(hi, 0, maxSide)
		for j := range hi {
			hi[j] += lo[j]
		}
		rects[i] = geometry.MustRectangle(lo, hi)
	}
	return rects
}

// Circles generates num circles with centers in [0, extent) and radii in
// [0, maxRadius).
func (r *RNG) Circles(num, dimensions int, extent, maxRadius float32) []geometry.Circle {
	r.mu.Lock()
	defer r.mu.Unlock()

	circles := make([]geometry.Circle, num)
	center := make([]float32, dimensions)
	for i := range num {
		r.fillLocked(center, 0, extent)
		circles[i] = geometry.MustCircle(center, r.rand.Float32()*maxRadius)
	}
	return circles
}

// Geometries generates a mix of points, rectangles and circles.
func (r *RNG) Geometries(num, dimensions int, extent, maxSide float32) []geometry.Geometry {
	out := make([]geometry.Geometry, num)
	for i := range num {
		switch r.Intn(3) {
		case 0:
			out[i] = r.Points(1, dimensions, extent)[0]
		case 1:
			out[i] = r.Rectangles(1, dimensions, extent, maxSide)[0]
		default:
			out[i] = r.Circles(1, dimensions, extent, maxSide/2)[0]
		}
	}
	return out
}

// BruteForceSearch returns the indexes of the geometries intersecting query.
func BruteForceSearch(geoms []geometry.Geometry, query geometry.Geometry) []int {
	var out []int
	for i, g := range geoms {
		if geometry.Intersects(query, g) {
			out = append(out, i)
		}
	}
	return out
}

// BruteForceNearest returns up to k geometries within maxDistance of query,
// nearest first.
func BruteForceNearest(geoms []geometry.Geometry, query geometry.Geometry, maxDistance float64, k int) []SearchResult {
	var results []SearchResult
	for i, g := range geoms {
		if d := geometry.Distance(query, g); d <= maxDistance {
			results = append(results, SearchResult{ID: i, Distance: d})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}
