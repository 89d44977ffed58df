package pattern

import (
	"fmt"

	"github.com/paulmach/orb"

	"skysurvey/pathplanner/internal/geo"
	"skysurvey/pathplanner/internal/logging"
	"skysurvey/pathplanner/internal/models"
)

// Perimeter traces the boundary ring in order, one waypoint per vertex
// excluding the closing duplicate. A positive inset first shrinks the ring
// inward by that many meters. Degenerate boundaries yield an empty list;
// a negative inset is a settings error.
func Perimeter(boundary orb.Ring, inset, altitude float64) ([]models.Waypoint, error) {
	if inset < 0 {
		return nil, fmt.Errorf("%w: inset must not be negative, got %v", models.ErrInvalidSettings, inset)
	}
	if altitude <= 0 {
		return nil, fmt.Errorf("%w: altitude must be positive, got %v", models.ErrInvalidSettings, altitude)
	}
	if !geo.ClosedRing(boundary) {
		logging.Warn("perimeter generation skipped: degenerate boundary",
			"points", len(boundary))
		return []models.Waypoint{}, nil
	}

	ring := boundary
	if inset > 0 {
		ring = geo.InsetRing(boundary, inset)
	}

	verts := ring[:len(ring)-1]
	wps := make([]models.Waypoint, 0, len(verts))
	for i, v := range verts {
		t := models.WaypointTypeWaypoint
		switch i {
		case 0:
			t = models.WaypointTypeStart
		case len(verts) - 1:
			t = models.WaypointTypeEnd
		}
		wps = append(wps, models.NewWaypoint(v, altitude, i, t))
	}
	return wps, nil
}
