package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"

	"skysurvey/pathplanner/internal/constants"
)

// DistanceMeters returns the haversine ground distance between two
// (lon, lat) points in meters.
func DistanceMeters(a, b orb.Point) float64 {
	return orbgeo.DistanceHaversine(a, b)
}

// Bearing returns the compass bearing from a toward b, normalized to
// [0, 360).
func Bearing(a, b orb.Point) float64 {
	return NormalizeBearing(orbgeo.Bearing(a, b))
}

// NormalizeBearing maps any angle in degrees onto [0, 360).
func NormalizeBearing(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// MetersToDegrees converts a ground distance to an approximate degree
// offset using the flat equatorial factor. See constants.MetersPerDegree
// for why this is not a projected-CRS conversion.
func MetersToDegrees(m float64) float64 {
	return m / constants.MetersPerDegree
}

// LineLength returns the total haversine length of a linestring in meters.
func LineLength(ls orb.LineString) float64 {
	var total float64
	for i := 1; i < len(ls); i++ {
		total += DistanceMeters(ls[i-1], ls[i])
	}
	return total
}

// PointAlong samples the point at the given arc-length distance (meters)
// along the linestring, interpolating linearly within a segment. Distances
// past either end clamp to the nearest terminal vertex.
func PointAlong(ls orb.LineString, dist float64) orb.Point {
	if len(ls) == 0 {
		return orb.Point{}
	}
	if dist <= 0 {
		return ls[0]
	}
	var walked float64
	for i := 1; i < len(ls); i++ {
		seg := DistanceMeters(ls[i-1], ls[i])
		if walked+seg >= dist && seg > 0 {
			f := (dist - walked) / seg
			return orb.Point{
				ls[i-1][0] + (ls[i][0]-ls[i-1][0])*f,
				ls[i-1][1] + (ls[i][1]-ls[i-1][1])*f,
			}
		}
		walked += seg
	}
	return ls[len(ls)-1]
}

// Centroid returns the area-weighted centroid of the ring.
func Centroid(ring orb.Ring) orb.Point {
	c, _ := planar.CentroidArea(orb.Polygon{ring})
	return c
}

// PointInPolygon reports whether the point lies inside the polygon.
// Boundary points count as inside.
func PointInPolygon(pt orb.Point, poly orb.Polygon) bool {
	return planar.PolygonContains(poly, pt)
}

// ClosedRing reports whether the ring has at least 4 points and its first
// and last coordinates coincide.
func ClosedRing(ring orb.Ring) bool {
	if len(ring) < 4 {
		return false
	}
	return ring[0] == ring[len(ring)-1]
}
