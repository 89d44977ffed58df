// Package pattern implements the flight-path generators: serpentine grid
// coverage, corridor following and perimeter tracing. Generators are pure
// functions from geometry plus settings to an ordered waypoint list;
// degenerate geometry degrades to an empty list while invalid settings are
// hard errors.
package pattern

import (
	"math"

	"github.com/paulmach/orb"

	"skysurvey/pathplanner/internal/geo"
	"skysurvey/pathplanner/internal/logging"
	"skysurvey/pathplanner/internal/models"
)

// gridLine is one flight segment across the polygon, already oriented in
// traversal direction.
type gridLine struct {
	from, to orb.Point
}

// Grid fills the boundary polygon with parallel lines at the configured
// spacing and rotation, connected in a boustrophedon sweep. The boundary
// must be a closed ring of at least 4 points; anything less, or a
// rotation/spacing combination where no candidate line crosses the
// polygon, yields an empty list.
func Grid(boundary orb.Ring, s models.GridSettings) ([]models.Waypoint, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if !geo.ClosedRing(boundary) {
		logging.Warn("grid generation skipped: degenerate boundary",
			"points", len(boundary))
		return []models.Waypoint{}, nil
	}

	bound := boundary.Bound()
	diag := math.Hypot(bound.Max[0]-bound.Min[0], bound.Max[1]-bound.Min[1])
	center := geo.Centroid(boundary)

	spacingDeg := geo.MetersToDegrees(s.Spacing)
	theta := geo.NormalizeBearing(s.Angle) * math.Pi / 180
	dirX, dirY := math.Cos(theta), math.Sin(theta)
	perpX, perpY := -dirY, dirX

	// Extending 1.5x the bounding diagonal past the centroid keeps every
	// candidate crossing the full polygon at any rotation.
	ext := 1.5 * diag
	steps := int(math.Ceil(ext / spacingDeg))

	var lines []gridLine
	for k := -steps; k <= steps; k++ {
		cx := center[0] + perpX*float64(k)*spacingDeg
		cy := center[1] + perpY*float64(k)*spacingDeg
		a := orb.Point{cx - dirX*ext, cy - dirY*ext}
		b := orb.Point{cx + dirX*ext, cy + dirY*ext}

		pts := geo.RingIntersections(a, b, boundary)
		if len(pts) < 2 {
			continue
		}

		// Keep the extreme pair as entry and exit; alternate traversal
		// direction per retained line for the serpentine connection.
		entry, exit := pts[0], pts[len(pts)-1]
		if len(lines)%2 == 1 {
			entry, exit = exit, entry
		}
		lines = append(lines, gridLine{from: entry, to: exit})
	}

	if len(lines) == 0 {
		logging.Warn("grid generation produced no lines",
			"spacing", s.Spacing, "angle", s.Angle)
		return []models.Waypoint{}, nil
	}

	total := 2 * len(lines)
	wps := make([]models.Waypoint, 0, total)
	for _, ln := range lines {
		for _, p := range []orb.Point{ln.from, ln.to} {
			idx := len(wps)
			wps = append(wps, models.NewWaypoint(p, s.Altitude, idx, gridWaypointType(idx, total)))
		}
	}
	return wps, nil
}

// gridWaypointType assigns the endpoint convention: the overall first and
// last waypoints are start/end, the first line's exit and the last line's
// entry are turns, everything else is a plain waypoint.
func gridWaypointType(idx, total int) models.WaypointType {
	switch idx {
	case 0:
		return models.WaypointTypeStart
	case total - 1:
		return models.WaypointTypeEnd
	case 1:
		return models.WaypointTypeTurn
	case total - 2:
		return models.WaypointTypeTurn
	}
	return models.WaypointTypeWaypoint
}
