package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/paulmach/orb"

	"skysurvey/pathplanner/internal/constants"
	"skysurvey/pathplanner/internal/models"
	"skysurvey/pathplanner/internal/models/dtos"
	"skysurvey/pathplanner/internal/services"
)

// InsertWaypointHandler handles POST /api/v1/sessions/{session_id}/waypoints
func InsertWaypointHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.InsertWaypointRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBody)
			return
		}

		fp, err := svc.InsertWaypoint(chi.URLParam(r, "session_id"), req.AfterOrder,
			orb.Point{req.Longitude, req.Latitude}, req.Altitude)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Waypoint inserted", fp)
	}
}

// RemoveWaypointHandler handles DELETE /api/v1/sessions/{session_id}/waypoints/{waypoint_id}
func RemoveWaypointHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		fp, err := svc.RemoveWaypoint(chi.URLParam(r, "session_id"), chi.URLParam(r, "waypoint_id"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Waypoint removed", fp)
	}
}

// MoveWaypointHandler handles PUT /api/v1/sessions/{session_id}/waypoints/{waypoint_id}/position
func MoveWaypointHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.MoveWaypointRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBody)
			return
		}

		fp, err := svc.MoveWaypoint(chi.URLParam(r, "session_id"), chi.URLParam(r, "waypoint_id"),
			orb.Point{req.Longitude, req.Latitude}, req.Altitude)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Waypoint moved", fp)
	}
}

// SetAltitudeHandler handles PUT /api/v1/sessions/{session_id}/waypoints/{waypoint_id}/altitude
func SetAltitudeHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SetAltitudeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBody)
			return
		}

		fp, err := svc.SetWaypointAltitude(chi.URLParam(r, "session_id"), chi.URLParam(r, "waypoint_id"), req.Altitude)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Waypoint altitude updated", fp)
	}
}

// UpdateWaypointMetaHandler handles PUT /api/v1/sessions/{session_id}/waypoints/{waypoint_id}/meta
func UpdateWaypointMetaHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.UpdateWaypointMetaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBody)
			return
		}

		var wpType *models.WaypointType
		if req.Type != nil {
			t := models.WaypointType(*req.Type)
			wpType = &t
		}

		fp, err := svc.UpdateWaypointMeta(chi.URLParam(r, "session_id"), chi.URLParam(r, "waypoint_id"),
			wpType, req.Speed, req.HoverTime, req.Actions)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Waypoint metadata updated", fp)
	}
}

// ReorderWaypointsHandler handles POST /api/v1/sessions/{session_id}/waypoints/reorder
func ReorderWaypointsHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ReorderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBody)
			return
		}

		fp, err := svc.ReorderWaypoints(chi.URLParam(r, "session_id"), req.FromOrder, req.ToOrder)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Waypoints reordered", fp)
	}
}

// SelectWaypointHandler handles PUT /api/v1/sessions/{session_id}/selection
func SelectWaypointHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SelectWaypointRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBody)
			return
		}

		fp, err := svc.SelectWaypoint(chi.URLParam(r, "session_id"), req.WaypointID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Selection updated", fp)
	}
}
