package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/internal/middleware"
	"github.com/acd-annotator/acd-annotator-go/internal/utils"
)

// SetupRoutes configures the routes for the application.
//
// The configured routes, relative to the configured base URL, are:
//   - POST /process: annotate a container group (JSON only, throttled)
//   - GET /status: service status
//   - GET /status/health_check: annotator health
//
// Every request gets a correlation id, is counted, and is logged on entry
// and exit unless request logging is disabled.
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	// Base middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestCounter(s.serviceInfo))
	if s.Config.Logging.RequestLogEnabled() {
		r.Use(middleware.RequestLogger())
	}
	r.Use(middleware.Recovery())
	r.Use(middleware.SecurityHeaders())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.Error(w, r, http.StatusNotFound, "No route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.Error(w, r, http.StatusMethodNotAllowed, r.Method+" is not supported for "+r.URL.Path)
	})

	routes := func(r chi.Router) {
		maxThreads := s.Config.Server.MaxThreads
		r.With(
			chimiddleware.ThrottleBacklog(maxThreads, maxThreads*constants.ThrottleBacklogPerThread, s.Config.Server.WriteTimeout),
			middleware.RequireJSON(),
		).Post(constants.ProcessPath, s.Handlers.ProcessHandler.Process)

		r.Get(constants.StatusPath, s.Handlers.StatusHandler.Status)
		r.Get(constants.HealthCheckPath, s.Handlers.StatusHandler.HealthCheck)
	}

	if base := s.Config.Annotator.BaseURL; base == "" || base == "/" {
		routes(r)
	} else {
		r.Route(base, routes)
	}

	s.router = r
}

// GetRouter returns the router
func (s *Server) GetRouter() chi.Router {
	return s.router
}
