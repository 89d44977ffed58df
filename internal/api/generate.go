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

// GenerateGridHandler handles POST /api/v1/sessions/{session_id}/generate/grid
func GenerateGridHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.GenerateGridRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBody)
			return
		}
		if len(req.Boundary) < 4 {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBoundary)
			return
		}

		fp, err := svc.GenerateGrid(chi.URLParam(r, "session_id"), common.ParseRing(req.Boundary))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Grid path generated", fp)
	}
}

// GenerateCorridorHandler handles POST /api/v1/sessions/{session_id}/generate/corridor
func GenerateCorridorHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.GenerateCorridorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBody)
			return
		}
		if len(req.Centerline) < 2 {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidCenter)
			return
		}

		fp, err := svc.GenerateCorridor(chi.URLParam(r, "session_id"), common.ParseLineString(req.Centerline))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Corridor path generated", fp)
	}
}

// GeneratePerimeterHandler handles POST /api/v1/sessions/{session_id}/generate/perimeter
func GeneratePerimeterHandler(svc *services.FlightPathService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.GeneratePerimeterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBody)
			return
		}
		if len(req.Boundary) < 4 {
			respondError(w, initTime, http.StatusBadRequest, constants.ErrMsgInvalidBoundary)
			return
		}

		fp, err := svc.GeneratePerimeter(chi.URLParam(r, "session_id"),
			common.ParseRing(req.Boundary), req.Inset, req.Altitude)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		respondOk(w, initTime, "Perimeter path generated", fp)
	}
}
