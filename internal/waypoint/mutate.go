// Package waypoint holds the pure list operations of the path engine:
// structural mutation and analytics over ordered waypoint sequences. Every
// function returns a new slice; callers replace their stored reference.
package waypoint

import (
	"encoding/json"
	"sort"

	"github.com/paulmach/orb"

	"skysurvey/pathplanner/internal/models"
)

func clone(wps []models.Waypoint) []models.Waypoint {
	out := make([]models.Waypoint, len(wps))
	copy(out, wps)
	return out
}

// Renumber sorts by order, reassigns contiguous zero-based orders and the
// labels derived from them, and re-derives endpoint types: the first
// element becomes start, the last end, and stale start/end markers in the
// middle demote to plain waypoints. Generator-assigned types (turn, hover,
// photo) survive in the middle. A single-element list is typed start.
func Renumber(wps []models.Waypoint) []models.Waypoint {
	out := clone(wps)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })

	for i := range out {
		out[i].Order = i
		out[i].Label = models.WaypointLabel(i)
		switch {
		case i == 0:
			out[i].Type = models.WaypointTypeStart
		case i == len(out)-1:
			out[i].Type = models.WaypointTypeEnd
		case out[i].Type == models.WaypointTypeStart || out[i].Type == models.WaypointTypeEnd:
			out[i].Type = models.WaypointTypeWaypoint
		}
	}
	return out
}

// Insert creates a new waypoint directly after the given order slot.
// afterOrder equal to the last order appends; -1 prepends. The new
// waypoint's ID is that of the returned element holding order
// afterOrder+1.
func Insert(wps []models.Waypoint, afterOrder int, pos orb.Point, altitude float64) []models.Waypoint {
	out := clone(wps)
	for i := range out {
		if out[i].Order > afterOrder {
			out[i].Order++
		}
	}
	out = append(out, models.NewWaypoint(pos, altitude, afterOrder+1, models.WaypointTypeWaypoint))
	return Renumber(out)
}

// Remove filters out the waypoint with the given ID and renumbers the
// remainder. An unknown ID is a no-op returning an equal list.
func Remove(wps []models.Waypoint, id string) []models.Waypoint {
	out := make([]models.Waypoint, 0, len(wps))
	for _, w := range wps {
		if w.ID != id {
			out = append(out, w)
		}
	}
	if len(out) == len(wps) {
		return out
	}
	return Renumber(out)
}

// Move replaces the horizontal position of the matching waypoint, and the
// altitude too when newAltitude is non-nil. Order, label and type are
// untouched; unknown IDs are a no-op.
func Move(wps []models.Waypoint, id string, pos orb.Point, newAltitude *float64) []models.Waypoint {
	out := clone(wps)
	for i := range out {
		if out[i].ID == id {
			out[i].Longitude = pos[0]
			out[i].Latitude = pos[1]
			if newAltitude != nil {
				out[i].Altitude = *newAltitude
			}
			break
		}
	}
	return out
}

// SetAltitude replaces only the altitude component of the matching
// waypoint.
func SetAltitude(wps []models.Waypoint, id string, altitude float64) []models.Waypoint {
	out := clone(wps)
	for i := range out {
		if out[i].ID == id {
			out[i].Altitude = altitude
			break
		}
	}
	return out
}

// UpdateMeta replaces the optional per-waypoint overrides: a user-assigned
// type (turn, hover, photo or waypoint; the derived start/end markers
// cannot be assigned), speed, hover time and the opaque actions payload.
// Nil fields are left untouched; unknown IDs are a no-op.
func UpdateMeta(wps []models.Waypoint, id string, wpType *models.WaypointType, speed, hoverTime *float64, actions json.RawMessage) []models.Waypoint {
	out := clone(wps)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if wpType != nil && assignableType(*wpType) && i != 0 && i != len(out)-1 {
			out[i].Type = *wpType
		}
		if speed != nil {
			out[i].Speed = speed
		}
		if hoverTime != nil {
			out[i].HoverTime = hoverTime
		}
		if actions != nil {
			out[i].Actions = actions
		}
		break
	}
	return out
}

func assignableType(t models.WaypointType) bool {
	switch t {
	case models.WaypointTypeTurn, models.WaypointTypeHover,
		models.WaypointTypePhoto, models.WaypointTypeWaypoint:
		return true
	}
	return false
}

// Reorder removes the element at fromOrder and reinserts it at toOrder
// with list-splice semantics, then renumbers. Out-of-range fromOrder is a
// no-op; toOrder clamps to the valid range.
func Reorder(wps []models.Waypoint, fromOrder, toOrder int) []models.Waypoint {
	out := clone(wps)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })

	if fromOrder < 0 || fromOrder >= len(out) {
		return out
	}
	if toOrder < 0 {
		toOrder = 0
	}
	if toOrder >= len(out) {
		toOrder = len(out) - 1
	}

	moved := out[fromOrder]
	out = append(out[:fromOrder], out[fromOrder+1:]...)
	out = append(out[:toOrder], append([]models.Waypoint{moved}, out[toOrder:]...)...)

	for i := range out {
		out[i].Order = i
	}
	return Renumber(out)
}
