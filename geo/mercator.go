package geo

import "math"

// LatLng is a geodetic WGS84 coordinate.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point is a planar-projected coordinate in meters (spherical Web Mercator).
type Point struct {
	X float64
	Y float64
}

const earthRadiusM = 6378137.0

// Project converts a geodetic coordinate to Web Mercator meters.
func Project(ll LatLng) Point {
	return Point{
		X: earthRadiusM * ll.Lng * math.Pi / 180,
		Y: earthRadiusM * math.Log(math.Tan(math.Pi/4+ll.Lat*math.Pi/360)),
	}
}

// Unproject converts Web Mercator meters back to a geodetic coordinate.
func Unproject(p Point) LatLng {
	return LatLng{
		Lat: (2*math.Atan(math.Exp(p.Y/earthRadiusM)) - math.Pi/2) * 180 / math.Pi,
		Lng: p.X / earthRadiusM * 180 / math.Pi,
	}
}

// Distance returns the planar Euclidean distance between two projected
// points, in meters.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
