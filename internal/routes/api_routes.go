package routes

import (
	"github.com/go-chi/chi/v5"

	"skysurvey/pathplanner/internal/api"
	"skysurvey/pathplanner/internal/common"
	"skysurvey/pathplanner/internal/middleware"
	"skysurvey/pathplanner/internal/services"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, pathSvc *services.FlightPathService, signer *common.URLSignerService) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.APIKeyMiddleware())

		v1.Post("/sessions", api.CreateSessionHandler(pathSvc))

		v1.Route("/sessions/{session_id}", func(s chi.Router) {
			s.Get("/", api.GetSessionHandler(pathSvc))
			s.Delete("/", api.DeleteSessionHandler(pathSvc))

			s.Put("/pattern", api.SetPatternHandler(pathSvc))
			s.Put("/settings/grid", api.UpdateGridSettingsHandler(pathSvc))
			s.Put("/settings/corridor", api.UpdateCorridorSettingsHandler(pathSvc))

			s.Post("/generate/grid", api.GenerateGridHandler(pathSvc))
			s.Post("/generate/corridor", api.GenerateCorridorHandler(pathSvc))
			s.Post("/generate/perimeter", api.GeneratePerimeterHandler(pathSvc))

			s.Post("/waypoints", api.InsertWaypointHandler(pathSvc))
			s.Post("/waypoints/reorder", api.ReorderWaypointsHandler(pathSvc))
			s.Delete("/waypoints/{waypoint_id}", api.RemoveWaypointHandler(pathSvc))
			s.Put("/waypoints/{waypoint_id}/position", api.MoveWaypointHandler(pathSvc))
			s.Put("/waypoints/{waypoint_id}/altitude", api.SetAltitudeHandler(pathSvc))
			s.Put("/waypoints/{waypoint_id}/meta", api.UpdateWaypointMetaHandler(pathSvc))
			s.Put("/selection", api.SelectWaypointHandler(pathSvc))

			s.Get("/stats", api.PathStatsHandler(pathSvc))
			s.Get("/profile", api.AltitudeProfileHandler(pathSvc))
			s.Post("/validate", api.ValidatePathHandler(pathSvc))

			s.Post("/export-link", api.ExportLinkHandler(pathSvc, signer))
		})
	})
}
