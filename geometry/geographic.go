package geometry

import "math"

// NormalizeLongitude maps a longitude in degrees into [-180, 180).
func NormalizeLongitude(d float64) float64 {
	sign := 1.0
	switch {
	case d < 0:
		sign = -1
	case d == 0:
		return 0
	}
	x := math.Abs(d) / 360
	x2 := (x - math.Floor(x)) * 360
	if x2 >= 180 {
		x2 -= 360
	}
	return x2 * sign
}

// PointGeographic creates a two-dimensional point (lon, lat) with the
// longitude normalized.
func PointGeographic(lon, lat float64) (Point, error) {
	return NewPoint(float32(NormalizeLongitude(lon)), float32(lat))
}

// RectangleGeographic creates a two-dimensional rectangle from two
// (lon, lat) corners. A box crossing the antimeridian gets an upper
// longitude above 180 so that lo <= hi still holds.
func RectangleGeographic(lon1, lat1, lon2, lat2 float64) (Rectangle, error) {
	x1 := NormalizeLongitude(lon1)
	x2 := NormalizeLongitude(lon2)
	if x2 < x1 {
		x2 += 360
	}
	return NewRectangle(
		[]float32{float32(x1), float32(lat1)},
		[]float32{float32(x2), float32(lat2)},
	)
}
