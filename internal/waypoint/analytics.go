package waypoint

import (
	"sort"

	"github.com/paulmach/orb"

	"skysurvey/pathplanner/internal/geo"
	"skysurvey/pathplanner/internal/logging"
	"skysurvey/pathplanner/internal/models"
)

// AltitudeRange summarizes the vertical envelope of a path.
type AltitudeRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// ProfilePoint is one entry of the altitude-over-distance chart series.
type ProfilePoint struct {
	CumulativeDistance float64 `json:"cumulative_distance"`
	Altitude           float64 `json:"altitude"`
	WaypointID         string  `json:"waypoint_id"`
	Order              int     `json:"order"`
}

func sortedByOrder(wps []models.Waypoint) []models.Waypoint {
	out := clone(wps)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// TotalDistance sums the haversine segment lengths between
// order-consecutive waypoints, in meters. Zero for fewer than two points.
func TotalDistance(wps []models.Waypoint) float64 {
	ordered := sortedByOrder(wps)
	var total float64
	for i := 1; i < len(ordered); i++ {
		total += geo.DistanceMeters(ordered[i-1].Point(), ordered[i].Point())
	}
	return total
}

// Duration estimates flight time in seconds at the given speed (m/s).
// Non-positive speed yields zero rather than a division blow-up.
func Duration(wps []models.Waypoint, speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return TotalDistance(wps) / speed
}

// Altitudes returns the min/max/average altitude over the list, all zero
// for an empty list.
func Altitudes(wps []models.Waypoint) AltitudeRange {
	if len(wps) == 0 {
		return AltitudeRange{}
	}
	r := AltitudeRange{Min: wps[0].Altitude, Max: wps[0].Altitude}
	var sum float64
	for _, w := range wps {
		if w.Altitude < r.Min {
			r.Min = w.Altitude
		}
		if w.Altitude > r.Max {
			r.Max = w.Altitude
		}
		sum += w.Altitude
	}
	r.Average = sum / float64(len(wps))
	return r
}

// Profile builds the altitude-versus-cumulative-distance series used for
// charting, one entry per waypoint in order.
func Profile(wps []models.Waypoint) []ProfilePoint {
	ordered := sortedByOrder(wps)
	out := make([]ProfilePoint, 0, len(ordered))
	var cum float64
	for i, w := range ordered {
		if i > 0 {
			cum += geo.DistanceMeters(ordered[i-1].Point(), w.Point())
		}
		out = append(out, ProfilePoint{
			CumulativeDistance: cum,
			Altitude:           w.Altitude,
			WaypointID:         w.ID,
			Order:              w.Order,
		})
	}
	return out
}

// OutsideBoundary returns the IDs of waypoints whose horizontal position
// falls outside the boundary ring. An empty result means the path is
// contained; an unusable boundary ring skips the check entirely and is
// logged so "all valid" is not mistaken for a verified containment.
func OutsideBoundary(wps []models.Waypoint, boundary orb.Ring) []string {
	if !geo.ClosedRing(boundary) {
		logging.Warn("boundary check skipped: boundary is not a closed ring",
			"points", len(boundary))
		return nil
	}
	poly := orb.Polygon{boundary}
	var ids []string
	for _, w := range wps {
		if !geo.PointInPolygon(w.Point(), poly) {
			ids = append(ids, w.ID)
		}
	}
	return ids
}

// AboveAltitude returns the IDs of waypoints exceeding the given ceiling.
func AboveAltitude(wps []models.Waypoint, maxAltitude float64) []string {
	var ids []string
	for _, w := range wps {
		if w.Altitude > maxAltitude {
			ids = append(ids, w.ID)
		}
	}
	return ids
}
