package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// normalize returns the unit vector of (dx, dy), or a zero vector for a
// degenerate input.
func normalize(dx, dy float64) (float64, float64) {
	l := math.Hypot(dx, dy)
	if l < intersectEpsilon {
		return 0, 0
	}
	return dx / l, dy / l
}

// vertexNormal returns the unit left-hand normal of the direction through a
// polyline vertex, averaging the adjacent segment directions for interior
// vertices.
func vertexNormal(ls orb.LineString, i int) (float64, float64) {
	var dx, dy float64
	if i > 0 {
		dx += ls[i][0] - ls[i-1][0]
		dy += ls[i][1] - ls[i-1][1]
	}
	if i < len(ls)-1 {
		dx += ls[i+1][0] - ls[i][0]
		dy += ls[i+1][1] - ls[i][1]
	}
	dx, dy = normalize(dx, dy)
	return -dy, dx
}

// BufferLine offsets the centerline outward by width meters on both sides
// and returns the resulting corridor polygon: the left offsets walked
// forward, the right offsets walked back, closed. Offsets are computed in
// degree space with the same flat conversion the grid generator uses.
func BufferLine(ls orb.LineString, width float64) orb.Polygon {
	if len(ls) < 2 || width <= 0 {
		return nil
	}

	off := MetersToDegrees(width)
	ring := make(orb.Ring, 0, 2*len(ls)+1)

	for i := 0; i < len(ls); i++ {
		nx, ny := vertexNormal(ls, i)
		ring = append(ring, orb.Point{ls[i][0] + nx*off, ls[i][1] + ny*off})
	}
	for i := len(ls) - 1; i >= 0; i-- {
		nx, ny := vertexNormal(ls, i)
		ring = append(ring, orb.Point{ls[i][0] - nx*off, ls[i][1] - ny*off})
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}

// InsetRing shrinks a closed ring inward by inset meters using edge offsets
// joined at their intersections. The input ring is returned unchanged for
// degenerate input or a non-positive inset. An inset larger than the
// polygon's inradius may produce a self-intersecting result; callers own
// that validation.
func InsetRing(ring orb.Ring, inset float64) orb.Ring {
	if !ClosedRing(ring) || inset <= 0 {
		return ring
	}

	// Interior is left of each edge when the ring winds counterclockwise.
	side := 1.0
	if planar.Area(ring) < 0 {
		side = -1.0
	}

	off := MetersToDegrees(inset)
	n := len(ring) - 1 // distinct vertices

	type edge struct{ a, b orb.Point }
	shifted := make([]edge, n)
	for i := 0; i < n; i++ {
		v, w := ring[i], ring[i+1]
		dx, dy := normalize(w[0]-v[0], w[1]-v[1])
		nx, ny := -dy*side, dx*side
		shifted[i] = edge{
			a: orb.Point{v[0] + nx*off, v[1] + ny*off},
			b: orb.Point{w[0] + nx*off, w[1] + ny*off},
		}
	}

	out := make(orb.Ring, 0, n+1)
	for i := 0; i < n; i++ {
		prev := shifted[(i+n-1)%n]
		cur := shifted[i]
		if p, ok := lineIntersection(prev.a, prev.b, cur.a, cur.b); ok {
			out = append(out, p)
		} else {
			// Parallel adjacent edges: the shared offset endpoint works.
			out = append(out, cur.a)
		}
	}
	out = append(out, out[0])
	return out
}

// lineIntersection intersects two infinite lines given by point pairs.
func lineIntersection(p1, p2, p3, p4 orb.Point) (orb.Point, bool) {
	r := orb.Point{p2[0] - p1[0], p2[1] - p1[1]}
	s := orb.Point{p4[0] - p3[0], p4[1] - p3[1]}

	denom := r[0]*s[1] - r[1]*s[0]
	if math.Abs(denom) < intersectEpsilon {
		return orb.Point{}, false
	}
	qp := orb.Point{p3[0] - p1[0], p3[1] - p1[1]}
	t := (qp[0]*s[1] - qp[1]*s[0]) / denom
	return orb.Point{p1[0] + t*r[0], p1[1] + t*r[1]}, true
}
