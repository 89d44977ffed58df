package dtos

import "encoding/json"

// Coordinates cross the API as [lon, lat] pairs, matching the engine's
// externally agreed wire shapes: a closed ring of at least 4 points for
// boundaries, at least 2 points for centerlines.

type SetPatternRequest struct {
	PatternType string `json:"pattern_type"`
}

type GenerateGridRequest struct {
	Boundary [][2]float64 `json:"boundary"`
}

type GenerateCorridorRequest struct {
	Centerline [][2]float64 `json:"centerline"`
}

type GeneratePerimeterRequest struct {
	Boundary [][2]float64 `json:"boundary"`
	Inset    float64      `json:"inset"`
	Altitude float64      `json:"altitude"`
}

type InsertWaypointRequest struct {
	AfterOrder int     `json:"after_order"`
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
	Altitude   float64 `json:"altitude"`
}

type MoveWaypointRequest struct {
	Longitude float64  `json:"longitude"`
	Latitude  float64  `json:"latitude"`
	Altitude  *float64 `json:"altitude,omitempty"`
}

type SetAltitudeRequest struct {
	Altitude float64 `json:"altitude"`
}

type ReorderRequest struct {
	FromOrder int `json:"from_order"`
	ToOrder   int `json:"to_order"`
}

type SelectWaypointRequest struct {
	WaypointID string `json:"waypoint_id"`
}

type UpdateWaypointMetaRequest struct {
	Type      *string         `json:"type,omitempty"`
	Speed     *float64        `json:"speed,omitempty"`
	HoverTime *float64        `json:"hover_time,omitempty"`
	Actions   json.RawMessage `json:"actions,omitempty"`
}

type ValidateRequest struct {
	Boundary    [][2]float64 `json:"boundary,omitempty"`
	MaxAltitude *float64     `json:"max_altitude,omitempty"`
}

type ExportLinkRequest struct {
	TTLSeconds int `json:"ttl_seconds"`
}
