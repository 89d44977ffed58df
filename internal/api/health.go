package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"skysurvey/pathplanner/internal/common"
	"skysurvey/pathplanner/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(cache *common.CacheService, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]entities.ServiceStatus)

		services["session_store"] = entities.ServiceStatus{
			Status:  "ok",
			Details: fmt.Sprintf("%d cached entries", cache.ItemCount()),
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
