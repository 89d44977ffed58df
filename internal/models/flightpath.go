package models

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// PatternType identifies which generator produced (or which manual process
// is producing) the current waypoint list.
type PatternType string

const (
	PatternNone      PatternType = "none"
	PatternGrid      PatternType = "grid"
	PatternWaypoint  PatternType = "waypoint"
	PatternCorridor  PatternType = "corridor"
	PatternPerimeter PatternType = "perimeter"
)

// ErrInvalidSettings wraps all settings validation failures.
var ErrInvalidSettings = errors.New("invalid pattern settings")

// ValidPatternType reports whether t is one of the known pattern types.
func ValidPatternType(t PatternType) bool {
	switch t {
	case PatternNone, PatternGrid, PatternWaypoint, PatternCorridor, PatternPerimeter:
		return true
	}
	return false
}

// GridSettings parameterizes the serpentine coverage generator. Overlap is
// informational for the operator and not consumed by the generation math.
type GridSettings struct {
	Spacing    float64 `json:"spacing"`
	Angle      float64 `json:"angle"`
	Overlap    float64 `json:"overlap"`
	Altitude   float64 `json:"altitude"`
	Speed      float64 `json:"speed"`
	TurnRadius float64 `json:"turn_radius"`
}

// DefaultGridSettings are applied to every new session so switching pattern
// types never loses tuning to a zero struct.
func DefaultGridSettings() GridSettings {
	return GridSettings{
		Spacing:    30,
		Angle:      0,
		Overlap:    70,
		Altitude:   50,
		Speed:      8,
		TurnRadius: 5,
	}
}

func (s GridSettings) Validate() error {
	if s.Spacing <= 0 {
		return fmt.Errorf("%w: spacing must be positive, got %v", ErrInvalidSettings, s.Spacing)
	}
	if s.Altitude <= 0 {
		return fmt.Errorf("%w: altitude must be positive, got %v", ErrInvalidSettings, s.Altitude)
	}
	if s.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %v", ErrInvalidSettings, s.Speed)
	}
	return nil
}

// CorridorSettings parameterizes the centerline-following generator. Width
// is the buffer half-width in meters on each side of the centerline.
type CorridorSettings struct {
	Width           float64 `json:"width"`
	Altitude        float64 `json:"altitude"`
	WaypointSpacing float64 `json:"waypoint_spacing"`
	Speed           float64 `json:"speed"`
}

func DefaultCorridorSettings() CorridorSettings {
	return CorridorSettings{
		Width:           40,
		Altitude:        50,
		WaypointSpacing: 50,
		Speed:           8,
	}
}

func (s CorridorSettings) Validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %v", ErrInvalidSettings, s.Width)
	}
	if s.WaypointSpacing <= 0 {
		return fmt.Errorf("%w: waypoint spacing must be positive, got %v", ErrInvalidSettings, s.WaypointSpacing)
	}
	if s.Altitude <= 0 {
		return fmt.Errorf("%w: altitude must be positive, got %v", ErrInvalidSettings, s.Altitude)
	}
	return nil
}

// FlightPath is the session aggregate: the active pattern type, both
// settings structs, the current waypoint list and the corridor buffer from
// the most recent corridor generation. It carries no synchronization;
// callers serialize access (FlightPathService does).
type FlightPath struct {
	SessionID          string           `json:"session_id"`
	PatternType        PatternType      `json:"pattern_type"`
	Waypoints          []Waypoint       `json:"waypoints"`
	GridSettings       GridSettings     `json:"grid_settings"`
	CorridorSettings   CorridorSettings `json:"corridor_settings"`
	CorridorBuffer     orb.Polygon      `json:"corridor_buffer,omitempty"`
	SelectedWaypointID string           `json:"selected_waypoint_id,omitempty"`
}

// Snapshot returns a copy that is safe to read after the owning lock is
// released. All mutations replace the waypoint slice and buffer wholesale
// rather than editing elements in place, so a shallow struct copy is
// enough to decouple the reader from later writes.
func (fp *FlightPath) Snapshot() *FlightPath {
	cp := *fp
	return &cp
}

// NewFlightPath returns an empty path with default settings for both
// generators.
func NewFlightPath(sessionID string) *FlightPath {
	return &FlightPath{
		SessionID:        sessionID,
		PatternType:      PatternNone,
		Waypoints:        []Waypoint{},
		GridSettings:     DefaultGridSettings(),
		CorridorSettings: DefaultCorridorSettings(),
	}
}
