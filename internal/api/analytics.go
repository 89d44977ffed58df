package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skysurvey/pathplanner/internal/common"
	"skysurvey/pathplanner/internal/constants"
	"skysurvey/pathplanner/internal/models/dtos"
	"skysurvey/pathplanner/internal/services"
)

// PathStatsHandler handles GET /api/v1/sessions/{session_id}/stats
func PathStatsHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		stats, err := svc.Stats(chi.URLParam(r, "session_id"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		respondOk(w, initTime, "Fetched path stats", dtos.PathStatsResponse{
			WaypointCount:   stats.WaypointCount,
			TotalDistance:   stats.TotalDistance,
			DurationSeconds: stats.DurationSeconds,
			Altitude:        stats.Altitude,
		})
	}
}

// AltitudeProfileHandler handles GET /api/v1/sessions/{session_id}/profile
func AltitudeProfileHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		points, err := svc.Profile(chi.URLParam(r, "session_id"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Fetched altitude profile", dtos.ProfileResponse{Points: points})
	}
}

// ValidatePathHandler handles POST /api/v1/sessions/{session_id}/validate
func ValidatePathHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ValidateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBody)
			return
		}

		outside, above, err := svc.Validate(chi.URLParam(r, "session_id"),
			common.ParseRing(req.Boundary), req.MaxAltitude)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		respondOk(w, initTime, "Validation complete", dtos.ValidationResponse{
			Valid:            len(outside) == 0 && len(above) == 0,
			OutsideBoundary:  outside,
			AboveMaxAltitude: above,
		})
	}
}
