package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skysurvey/pathplanner/internal/common"
	"skysurvey/pathplanner/internal/constants"
	"skysurvey/pathplanner/internal/models/dtos"
	"skysurvey/pathplanner/internal/services"
)

const defaultExportTTL = 15 * time.Minute

// ExportLinkHandler handles POST /api/v1/sessions/{session_id}/export-link.
// It returns a presigned single-use URL the caller can hand to tooling
// that holds no API key.
func ExportLinkHandler(svc *services.FlightPathService, signer *common.URLSignerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		sessionID := chi.URLParam(r, "session_id")

		// The session must exist before a link is minted for it.
		if _, err := svc.Get(sessionID); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		ttl := defaultExportTTL
		var req dtos.ExportLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.TTLSeconds > 0 {
			ttl = time.Duration(req.TTLSeconds) * time.Second
		}

		token, err := signer.GeneratePresignedToken(sessionID, ttl)
		if err != nil {
			respondError(w, initTime, http.StatusInternalServerError, err.Error())
			return
		}

		respondOk(w, initTime, "Export link generated", dtos.ExportLinkResponse{
			URL:       fmt.Sprintf("/export/%s?token=%s", sessionID, token),
			ExpiresAt: time.Now().Add(ttl).UTC().Format(time.RFC3339),
		})
	}
}

// ExportHandler handles GET /export/{session_id}. It is registered outside
// the authenticated API group; the presigned token is the credential.
func ExportHandler(svc *services.FlightPathService, signer *common.URLSignerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		sessionID := chi.URLParam(r, "session_id")

		tok, err := signer.ValidateToken(r.URL.Query().Get("token"))
		if err != nil || tok.SessionID != sessionID {
			respondError(w, initTime, http.StatusForbidden, constants.ErrMsgInvalidToken)
			return
		}

		fp, err := svc.Get(sessionID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		// Burn only once the session is known to exist, so a link is not
		// spent on a fetch that returned nothing.
		if err := signer.Consume(tok); err != nil {
			respondError(w, initTime, http.StatusForbidden, constants.ErrMsgInvalidToken)
			return
		}

		fc := services.ExportFeatureCollection(fp)
		w.Header().Set("Content-Type", "application/geo+json")
		_ = json.NewEncoder(w).Encode(fc)
	}
}
