package pattern

import (
	"math"

	"github.com/paulmach/orb"

	"skysurvey/pathplanner/internal/geo"
	"skysurvey/pathplanner/internal/logging"
	"skysurvey/pathplanner/internal/models"
)

// terminalSnap is the degree tolerance under which a sampled point is
// considered to already sit on the centerline's terminal vertex.
const terminalSnap = 1e-9

// CorridorResult bundles the sampled flight line with the buffered
// operating volume around the original centerline.
type CorridorResult struct {
	Waypoints  []models.Waypoint `json:"waypoints"`
	Buffer     orb.Polygon       `json:"buffer,omitempty"`
	PathLength float64           `json:"path_length"`
}

// Corridor samples the centerline at fixed arc-length increments and
// buffers it into the corridor polygon. Each waypoint except the last
// carries the forward bearing toward its successor. The final waypoint
// always sits exactly on the centerline's terminal coordinate, with an
// extra end waypoint appended when the path length is not a multiple of
// the spacing. Fewer than 2 centerline points yields an empty result.
func Corridor(center orb.LineString, s models.CorridorSettings) (CorridorResult, error) {
	if err := s.Validate(); err != nil {
		return CorridorResult{}, err
	}
	if len(center) < 2 {
		logging.Warn("corridor generation skipped: centerline too short",
			"points", len(center))
		return CorridorResult{Waypoints: []models.Waypoint{}}, nil
	}

	pathLen := geo.LineLength(center)

	var samples []orb.Point
	for i := 0; ; i++ {
		d := float64(i) * s.WaypointSpacing
		if d > pathLen {
			break
		}
		samples = append(samples, geo.PointAlong(center, d))
	}

	terminal := center[len(center)-1]
	last := samples[len(samples)-1]
	if math.Abs(last[0]-terminal[0]) < terminalSnap && math.Abs(last[1]-terminal[1]) < terminalSnap {
		samples[len(samples)-1] = terminal
	} else {
		samples = append(samples, terminal)
	}

	wps := make([]models.Waypoint, 0, len(samples))
	for i, p := range samples {
		t := models.WaypointTypeWaypoint
		switch i {
		case 0:
			t = models.WaypointTypeStart
		case len(samples) - 1:
			t = models.WaypointTypeEnd
		}
		wp := models.NewWaypoint(p, s.Altitude, i, t)
		if i < len(samples)-1 {
			h := geo.Bearing(p, samples[i+1])
			wp.Heading = &h
		}
		wps = append(wps, wp)
	}

	return CorridorResult{
		Waypoints:  wps,
		Buffer:     geo.BufferLine(center, s.Width),
		PathLength: pathLen,
	}, nil
}
