// Package server provides the HTTP server of an ACD annotator service.
// It handles routing, middleware configuration, and server lifecycle management.
//
// The server is built around a single annotator. NewServer wires the
// process and status services, their handlers and the routes; Start serves
// until a shutdown signal arrives and then drains in-flight requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/acd-annotator/acd-annotator-go/internal/config"
	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/internal/handlers"
	"github.com/acd-annotator/acd-annotator-go/internal/service"
	"github.com/acd-annotator/acd-annotator-go/pkg/annotator"
	"github.com/acd-annotator/acd-annotator-go/pkg/container"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	// ProcessHandler runs the annotator over container groups
	ProcessHandler *handlers.ProcessHandler

	// StatusHandler reports service status and health
	StatusHandler *handlers.StatusHandler
}

// Server represents the API server of an annotator service.
// It encapsulates all server components and handles server lifecycle management,
// including initialization, startup, and graceful shutdown.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Annotator is the logic the service hosts
	Annotator annotator.Annotator

	// router handles HTTP routing
	router chi.Router

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// processService runs the processing pipeline
	processService *service.ProcessService

	// serviceInfo tracks uptime and request counts
	serviceInfo *service.ServiceInfo

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance hosting ann.
//
// Parameters:
//   - cfg: Application configuration including server, annotator and validation settings
//   - ann: The annotator; its OnStartup hook must already have run
//
// Returns:
//   - A fully initialized Server instance ready to start
//   - An error if initialization of any component fails
func NewServer(cfg *config.AppConfig, ann annotator.Annotator) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}
	if ann == nil {
		return nil, errors.New("annotator is required")
	}

	s := &Server{
		Config:    cfg,
		Annotator: ann,
	}

	s.setupServices()
	s.setupHandlers()
	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// setupServices initializes the process and status services.
func (s *Server) setupServices() {
	mode := container.ModeFor(s.Config.Validation.IsPermissive())
	s.processService = service.NewProcessService(s.Annotator, mode)
	s.serviceInfo = service.NewServiceInfo(s.Config.App.Version)

	log.Info().
		Str("mode", mode.String()).
		Int("max_threads", s.Config.Server.MaxThreads).
		Msg("Services initialized")
}

// setupHandlers initializes all HTTP request handlers.
func (s *Server) setupHandlers() {
	s.Handlers = &Handlers{
		ProcessHandler: handlers.NewProcessHandler(s.processService),
		StatusHandler:  handlers.NewStatusHandler(s.serviceInfo, s.Annotator),
	}
}

// ServiceInfo returns the tracker behind the status endpoint
func (s *Server) ServiceInfo() *service.ServiceInfo {
	return s.serviceInfo
}

// Start starts the HTTP server and sets up signal handling for graceful shutdown.
// It runs in a blocking mode, waiting for either server errors or shutdown signals.
//
// Returns:
//   - An error if the server fails to start or encounters an error during operation
func (s *Server) Start() error {
	// Create a channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Str("base_url", s.Config.Annotator.BaseURL).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	// Create a channel to listen for OS signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			// Shutdown the server immediately if graceful shutdown fails
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete.
//
// Parameters:
//   - ctx: Context with timeout for the shutdown operation
//
// Returns:
//   - An error if shutdown fails within the context timeout
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().
		Int64("requests_served", s.serviceInfo.RequestCount()).
		Msg("Server stopped gracefully")
	return nil
}
