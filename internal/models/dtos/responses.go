package dtos

import (
	"skysurvey/pathplanner/internal/waypoint"
)

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

type PathStatsResponse struct {
	WaypointCount   int                    `json:"waypoint_count"`
	TotalDistance   float64                `json:"total_distance"`
	DurationSeconds float64                `json:"duration_seconds"`
	Altitude        waypoint.AltitudeRange `json:"altitude"`
}

type ProfileResponse struct {
	Points []waypoint.ProfilePoint `json:"points"`
}

type ValidationResponse struct {
	Valid            bool     `json:"valid"`
	OutsideBoundary  []string `json:"outside_boundary,omitempty"`
	AboveMaxAltitude []string `json:"above_max_altitude,omitempty"`
}

type ExportLinkResponse struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}
