package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// WaypointType classifies a waypoint's role within the path.
type WaypointType string

const (
	WaypointTypeStart    WaypointType = "start"
	WaypointTypeEnd      WaypointType = "end"
	WaypointTypeTurn     WaypointType = "turn"
	WaypointTypeWaypoint WaypointType = "waypoint"
	WaypointTypeHover    WaypointType = "hover"
	WaypointTypePhoto    WaypointType = "photo"
)

// Waypoint is a single navigation point. Longitude/latitude are decimal
// degrees, altitude is meters AGL at that point. Order is the zero-based
// position within the path; orders are always contiguous across a list
// crossing a component boundary.
type Waypoint struct {
	ID        string          `json:"id"`
	Longitude float64         `json:"longitude"`
	Latitude  float64         `json:"latitude"`
	Altitude  float64         `json:"altitude"`
	Order     int             `json:"order"`
	Label     string          `json:"label"`
	Type      WaypointType    `json:"type"`
	Heading   *float64        `json:"heading,omitempty"`
	Speed     *float64        `json:"speed,omitempty"`
	HoverTime *float64        `json:"hover_time,omitempty"`
	Actions   json.RawMessage `json:"actions,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewWaypoint creates a waypoint at the given position with a fresh ID.
// Order, label and type are finalized by the list-level renumber pass.
func NewWaypoint(pos orb.Point, altitude float64, order int, wpType WaypointType) Waypoint {
	return Waypoint{
		ID:        uuid.New().String(),
		Longitude: pos[0],
		Latitude:  pos[1],
		Altitude:  altitude,
		Order:     order,
		Label:     WaypointLabel(order),
		Type:      wpType,
		CreatedAt: time.Now().UTC(),
	}
}

// Point returns the horizontal position as an orb point (lon, lat).
func (w Waypoint) Point() orb.Point {
	return orb.Point{w.Longitude, w.Latitude}
}

// WaypointLabel derives the display label for an order slot. Labels are
// never stored independently of order.
func WaypointLabel(order int) string {
	return fmt.Sprintf("WP%d", order+1)
}
