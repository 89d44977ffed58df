package routes

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"skysurvey/pathplanner/internal/api"
	"skysurvey/pathplanner/internal/common"
	"skysurvey/pathplanner/internal/logging"
	"skysurvey/pathplanner/internal/metrics"
	"skysurvey/pathplanner/internal/middleware"
	"skysurvey/pathplanner/internal/services"
)

// RegisterRoutes wires the full HTTP surface: session cache, path service,
// export signer, middleware stack and all route groups.
func RegisterRoutes(upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"}, // map editor dev servers
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// Session store: long default expiry, hourly cleanup sweep.
	sessionCache := common.NewCacheService(int((24 * time.Hour).Seconds()), int(time.Hour.Seconds()))

	secret := os.Getenv("EXPORT_SIGNING_SECRET")
	if secret == "" {
		secret = "dev-export-secret"
		logging.Warn("EXPORT_SIGNING_SECRET not set, using development secret")
	}
	signer := common.NewURLSignerService([]byte(secret), sessionCache)

	pathSvc := services.NewFlightPathService(sessionCache, metricsReg)

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(sessionCache, upSince))

	// token-gated GeoJSON export lives outside the API key group
	r.Get("/export/{session_id}", api.ExportHandler(pathSvc, signer))

	RegisterAPIRoutes(r, pathSvc, signer)

	return r
}
