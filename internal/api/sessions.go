package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skysurvey/pathplanner/internal/constants"
	"skysurvey/pathplanner/internal/models"
	"skysurvey/pathplanner/internal/models/dtos"
	"skysurvey/pathplanner/internal/services"
)

// CreateSessionHandler handles POST /api/v1/sessions
func CreateSessionHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		fp := svc.CreateSession()
		respondOk(w, initTime, "Session created", fp)
	}
}

// GetSessionHandler handles GET /api/v1/sessions/{session_id}
func GetSessionHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		fp, err := svc.Get(chi.URLParam(r, "session_id"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Fetched session", fp)
	}
}

// DeleteSessionHandler handles DELETE /api/v1/sessions/{session_id}
func DeleteSessionHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := svc.DeleteSession(chi.URLParam(r, "session_id")); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Session deleted", nil)
	}
}

// SetPatternHandler handles PUT /api/v1/sessions/{session_id}/pattern
func SetPatternHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SetPatternRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBody)
			return
		}

		fp, err := svc.SetPatternType(chi.URLParam(r, "session_id"), models.PatternType(req.PatternType))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Pattern type updated", fp)
	}
}

// UpdateGridSettingsHandler handles PUT /api/v1/sessions/{session_id}/settings/grid
func UpdateGridSettingsHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req models.GridSettings
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBody)
			return
		}

		fp, err := svc.UpdateGridSettings(chi.URLParam(r, "session_id"), req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Grid settings updated", fp)
	}
}

// UpdateCorridorSettingsHandler handles PUT /api/v1/sessions/{session_id}/settings/corridor
func UpdateCorridorSettingsHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req models.CorridorSettings
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBody)
			return
		}

		fp, err := svc.UpdateCorridorSettings(chi.URLParam(r, "session_id"), req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Corridor settings updated", fp)
	}
}
