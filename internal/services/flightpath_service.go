package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"skysurvey/pathplanner/internal/common"
	"skysurvey/pathplanner/internal/constants"
	"skysurvey/pathplanner/internal/logging"
	"skysurvey/pathplanner/internal/metrics"
	"skysurvey/pathplanner/internal/models"
	"skysurvey/pathplanner/internal/pattern"
	"skysurvey/pathplanner/internal/waypoint"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrWaypointNotFound = errors.New("waypoint not found")
	ErrInvalidPattern   = errors.New("unknown pattern type")
)

// sessionTTL is refreshed on every access, so a session only expires after
// a day of inactivity.
const sessionTTL = 24 * time.Hour

// FlightPathService mediates between the pure generators/mutators and the
// per-session FlightPath aggregates held in the cache. It is the only
// component with mutable state; the mutex serializes all access, and
// every method returns a snapshot so callers never read the cached
// aggregate after the lock is released.
type FlightPathService struct {
	mu      sync.Mutex
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

func NewFlightPathService(cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) *FlightPathService {
	return &FlightPathService{
		cache:   cache,
		metrics: metricsReg,
	}
}

func sessionKey(id string) string {
	return string(constants.CachePrefixSession) + id
}

// CreateSession starts an empty flight path with default settings for both
// generators.
func (s *FlightPathService) CreateSession() *models.FlightPath {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp := models.NewFlightPath(uuid.New().String())
	s.cache.Set(sessionKey(fp.SessionID), fp, sessionTTL)

	if s.metrics != nil {
		s.metrics.SessionsActive.Inc()
	}
	logging.Info("path session created", "session_id", fp.SessionID)
	return fp.Snapshot()
}

func (s *FlightPathService) load(id string) (*models.FlightPath, error) {
	val, found := s.cache.Get(sessionKey(id))
	if !found {
		if s.metrics != nil {
			s.metrics.CacheMissesTotal.WithLabelValues("session").Inc()
		}
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if s.metrics != nil {
		s.metrics.CacheHitsTotal.WithLabelValues("session").Inc()
	}

	fp, ok := val.(*models.FlightPath)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return fp, nil
}

func (s *FlightPathService) save(fp *models.FlightPath) {
	s.cache.Set(sessionKey(fp.SessionID), fp, sessionTTL)
}

// Get returns the current flight path and refreshes the session TTL.
func (s *FlightPathService) Get(id string) (*models.FlightPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}
	s.save(fp)
	return fp.Snapshot(), nil
}

// DeleteSession drops the session immediately.
func (s *FlightPathService) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.load(id); err != nil {
		return err
	}
	s.cache.Delete(sessionKey(id))
	if s.metrics != nil {
		s.metrics.SessionsActive.Dec()
	}
	logging.Info("path session deleted", "session_id", id)
	return nil
}

// SetPatternType switches the active pattern. A grid path and a corridor
// path are not interchangeable edits of the same list, so the switch
// discards waypoints, buffer and selection; settings survive so prior
// tuning is not lost.
func (s *FlightPathService) SetPatternType(id string, t models.PatternType) (*models.FlightPath, error) {
	if !models.ValidPatternType(t) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}

	fp.PatternType = t
	fp.Waypoints = []models.Waypoint{}
	fp.CorridorBuffer = nil
	fp.SelectedWaypointID = ""
	s.save(fp)
	return fp.Snapshot(), nil
}

// UpdateGridSettings validates and stores new grid tuning. Invalid
// settings fail loudly rather than producing degenerate paths later.
func (s *FlightPathService) UpdateGridSettings(id string, gs models.GridSettings) (*models.FlightPath, error) {
	if err := gs.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}
	fp.GridSettings = gs
	s.save(fp)
	return fp.Snapshot(), nil
}

// UpdateCorridorSettings validates and stores new corridor tuning.
func (s *FlightPathService) UpdateCorridorSettings(id string, cs models.CorridorSettings) (*models.FlightPath, error) {
	if err := cs.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}
	fp.CorridorSettings = cs
	s.save(fp)
	return fp.Snapshot(), nil
}

func (s *FlightPathService) observeGeneration(patternLabel string, start time.Time, count int) {
	if s.metrics == nil {
		return
	}
	s.metrics.PathsGeneratedTotal.WithLabelValues(patternLabel).Inc()
	s.metrics.GenerationDuration.WithLabelValues(patternLabel).Observe(time.Since(start).Seconds())
	s.metrics.WaypointsPerPath.WithLabelValues(patternLabel).Observe(float64(count))
	if count == 0 {
		s.metrics.DegenerateInputs.WithLabelValues(patternLabel).Inc()
	}
}

// GenerateGrid replaces the waypoint list with a serpentine coverage of
// the boundary using the session's grid settings.
func (s *FlightPathService) GenerateGrid(id string, boundary orb.Ring) (*models.FlightPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	wps, err := pattern.Grid(boundary, fp.GridSettings)
	if err != nil {
		return nil, err
	}
	s.observeGeneration(string(models.PatternGrid), start, len(wps))

	fp.PatternType = models.PatternGrid
	fp.Waypoints = wps
	fp.CorridorBuffer = nil
	fp.SelectedWaypointID = ""
	s.save(fp)
	return fp.Snapshot(), nil
}

// GenerateCorridor replaces the waypoint list with a sampled path along
// the centerline and stores the buffered corridor polygon.
func (s *FlightPathService) GenerateCorridor(id string, centerline orb.LineString) (*models.FlightPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := pattern.Corridor(centerline, fp.CorridorSettings)
	if err != nil {
		return nil, err
	}
	s.observeGeneration(string(models.PatternCorridor), start, len(res.Waypoints))

	fp.PatternType = models.PatternCorridor
	fp.Waypoints = res.Waypoints
	fp.CorridorBuffer = res.Buffer
	fp.SelectedWaypointID = ""
	s.save(fp)
	return fp.Snapshot(), nil
}

// GeneratePerimeter replaces the waypoint list with a trace of the
// boundary ring, optionally inset. A non-positive altitude falls back to
// the session's grid altitude.
func (s *FlightPathService) GeneratePerimeter(id string, boundary orb.Ring, inset, altitude float64) (*models.FlightPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if altitude <= 0 {
		altitude = fp.GridSettings.Altitude
	}

	start := time.Now()
	wps, err := pattern.Perimeter(boundary, inset, altitude)
	if err != nil {
		return nil, err
	}
	s.observeGeneration(string(models.PatternPerimeter), start, len(wps))

	fp.PatternType = models.PatternPerimeter
	fp.Waypoints = wps
	fp.CorridorBuffer = nil
	fp.SelectedWaypointID = ""
	s.save(fp)
	return fp.Snapshot(), nil
}

func (s *FlightPathService) countMutation(op string) {
	if s.metrics != nil {
		s.metrics.MutationsTotal.WithLabelValues(op).Inc()
	}
}

// InsertWaypoint adds a manual waypoint after the given order slot. A
// session still in pattern "none" flips to the manual "waypoint" pattern.
func (s *FlightPathService) InsertWaypoint(id string, afterOrder int, pos orb.Point, altitude float64) (*models.FlightPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}

	fp.Waypoints = waypoint.Insert(fp.Waypoints, afterOrder, pos, altitude)
	if fp.PatternType == models.PatternNone {
		fp.PatternType = models.PatternWaypoint
	}
	s.countMutation("insert")
	s.save(fp)
	return fp.Snapshot(), nil
}

// RemoveWaypoint deletes the waypoint; removing an unknown ID is a no-op,
// matching the UI double-invocation tolerance of the mutation contract.
// Removing the selected waypoint clears the selection.
func (s *FlightPathService) RemoveWaypoint(id, waypointID string) (*models.FlightPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}

	fp.Waypoints = waypoint.Remove(fp.Waypoints, waypointID)
	if fp.SelectedWaypointID == waypointID {
		fp.SelectedWaypointID = ""
	}
	s.countMutation("remove")
	s.save(fp)
	return fp.Snapshot(), nil
}

// MoveWaypoint repositions a waypoint; a nil altitude preserves the
// current one.
func (s *FlightPathService) MoveWaypoint(id, waypointID string, pos orb.Point, altitude *float64) (*models.FlightPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}

	fp.Waypoints = waypoint.Move(fp.Waypoints, waypointID, pos, altitude)
	s.countMutation("move")
	s.save(fp)
	return fp.Snapshot(), nil
}

// SetWaypointAltitude replaces only the altitude component.
func (s *FlightPathService) SetWaypointAltitude(id, waypointID string, altitude float64) (*models.FlightPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}

	fp.Waypoints = waypoint.SetAltitude(fp.Waypoints, waypointID, altitude)
	s.countMutation("set_altitude")
	s.save(fp)
	return fp.Snapshot(), nil
}

// UpdateWaypointMeta sets the opaque per-waypoint overrides.
func (s *FlightPathService) UpdateWaypointMeta(id, waypointID string, wpType *models.WaypointType, speed, hoverTime *float64, actions json.RawMessage) (*models.FlightPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}

	fp.Waypoints = waypoint.UpdateMeta(fp.Waypoints, waypointID, wpType, speed, hoverTime, actions)
	s.countMutation("meta")
	s.save(fp)
	return fp.Snapshot(), nil
}

// ReorderWaypoints splices the element at fromOrder into the toOrder slot.
func (s *FlightPathService) ReorderWaypoints(id string, fromOrder, toOrder int) (*models.FlightPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}

	fp.Waypoints = waypoint.Reorder(fp.Waypoints, fromOrder, toOrder)
	s.countMutation("reorder")
	s.save(fp)
	return fp.Snapshot(), nil
}

// SelectWaypoint marks one waypoint for UI highlighting; an empty ID
// clears the selection. Selecting an unknown waypoint is an error, not a
// silent no-op, since the reference is dangling.
func (s *FlightPathService) SelectWaypoint(id, waypointID string) (*models.FlightPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}

	if waypointID != "" {
		found := false
		for _, w := range fp.Waypoints {
			if w.ID == waypointID {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrWaypointNotFound, waypointID)
		}
	}

	fp.SelectedWaypointID = waypointID
	s.save(fp)
	return fp.Snapshot(), nil
}

// PathStats aggregates the analytics for the stats endpoint.
type PathStats struct {
	WaypointCount   int
	TotalDistance   float64
	DurationSeconds float64
	Altitude        waypoint.AltitudeRange
}

// Stats computes distance, duration and altitude envelope. Duration uses
// the active pattern's speed setting; per-waypoint speed overrides are
// passthrough metadata the engine never interprets.
func (s *FlightPathService) Stats(id string) (*PathStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}

	speed := fp.GridSettings.Speed
	if fp.PatternType == models.PatternCorridor {
		speed = fp.CorridorSettings.Speed
	}

	return &PathStats{
		WaypointCount:   len(fp.Waypoints),
		TotalDistance:   waypoint.TotalDistance(fp.Waypoints),
		DurationSeconds: waypoint.Duration(fp.Waypoints, speed),
		Altitude:        waypoint.Altitudes(fp.Waypoints),
	}, nil
}

// Profile returns the altitude-over-distance chart series.
func (s *FlightPathService) Profile(id string) ([]waypoint.ProfilePoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, err
	}
	return waypoint.Profile(fp.Waypoints), nil
}

// Validate checks the path against an optional boundary and altitude
// ceiling, returning the offending waypoint IDs per check.
func (s *FlightPathService) Validate(id string, boundary orb.Ring, maxAltitude *float64) (outside, above []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fp, err := s.load(id)
	if err != nil {
		return nil, nil, err
	}

	if len(boundary) > 0 {
		outside = waypoint.OutsideBoundary(fp.Waypoints, boundary)
	}
	if maxAltitude != nil {
		above = waypoint.AboveAltitude(fp.Waypoints, *maxAltitude)
	}
	return outside, above, nil
}
