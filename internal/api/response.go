package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skysurvey/pathplanner/internal/common"
	"skysurvey/pathplanner/internal/constants"
	"skysurvey/pathplanner/internal/models"
	"skysurvey/pathplanner/internal/models/dtos"
	"skysurvey/pathplanner/internal/services"
)

func respondOk(w http.ResponseWriter, init time.Time, message string, data any) {
	resp := dtos.APIResponse{
		Status:       string(constants.APIStatusOk),
		Message:      message,
		ResponseTime: common.GetResponseTime(init),
		Data:         data,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func respondError(w http.ResponseWriter, init time.Time, statusCode int, message string) {
	resp := dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      message,
		ResponseTime: common.GetResponseTime(init),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// respondServiceError maps service-layer errors onto HTTP statuses: missing
// sessions are 404, caller mistakes (bad settings, unknown pattern,
// dangling waypoint reference) are 400, everything else 500.
func respondServiceError(w http.ResponseWriter, init time.Time, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		respondError(w, init, http.StatusNotFound, constants.ErrMsgSessionNotFound)
	case errors.Is(err, models.ErrInvalidSettings),
		errors.Is(err, services.ErrInvalidPattern),
		errors.Is(err, services.ErrWaypointNotFound):
		respondError(w, init, http.StatusBadRequest, err.Error())
	default:
		respondError(w, init, http.StatusInternalServerError, err.Error())
	}
}
