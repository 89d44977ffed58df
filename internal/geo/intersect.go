package geo

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

const intersectEpsilon = 1e-12

func cross(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

// SegmentIntersection returns the intersection point of segments p1-p2 and
// p3-p4, if one exists. Touching endpoints count as an intersection;
// collinear overlap does not yield a point.
func SegmentIntersection(p1, p2, p3, p4 orb.Point) (orb.Point, bool) {
	r := orb.Point{p2[0] - p1[0], p2[1] - p1[1]}
	s := orb.Point{p4[0] - p3[0], p4[1] - p3[1]}

	denom := r[0]*s[1] - r[1]*s[0]
	if math.Abs(denom) < intersectEpsilon {
		return orb.Point{}, false
	}

	qp := orb.Point{p3[0] - p1[0], p3[1] - p1[1]}
	t := (qp[0]*s[1] - qp[1]*s[0]) / denom
	u := (qp[0]*r[1] - qp[1]*r[0]) / denom

	if t < -intersectEpsilon || t > 1+intersectEpsilon ||
		u < -intersectEpsilon || u > 1+intersectEpsilon {
		return orb.Point{}, false
	}

	return orb.Point{p1[0] + t*r[0], p1[1] + t*r[1]}, true
}

// RingIntersections returns every intersection of segment a-b with the
// ring's edges, sorted by longitude with latitude as tie-break so callers
// get a deterministic entry/exit ordering even for vertical sweeps.
func RingIntersections(a, b orb.Point, ring orb.Ring) []orb.Point {
	var pts []orb.Point
	for i := 1; i < len(ring); i++ {
		if p, ok := SegmentIntersection(a, b, ring[i-1], ring[i]); ok {
			pts = append(pts, p)
		}
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i][0] != pts[j][0] {
			return pts[i][0] < pts[j][0]
		}
		return pts[i][1] < pts[j][1]
	})
	return pts
}
