package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/services"
)

const shutdownTimeout = 30 * time.Second

// Services groups the application services the HTTP API exposes
type Services struct {
	Goals    *services.GoalService
	Ingest   *services.IngestService
	Insights *services.InsightsService
	Sessions *services.SessionizationService
	Windows  *services.WindowService
}

// Server serves the tally HTTP API
type Server struct {
	addr     string
	location *time.Location
	router   *chi.Mux
	svc      Services
}

// NewServer creates a new API server. loc is the default zone for calendar buckets.
func NewServer(addr string, svc Services, loc *time.Location) *Server {
	s := &Server{
		addr:     addr,
		location: loc,
		router:   chi.NewRouter(),
		svc:      svc,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(requestID)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		// Ingest
		r.Post("/events", s.handleIngestEvents)
		r.Post("/activities", s.handleImportActivities)
		r.Get("/activities", s.handleListActivities)

		// Projections
		r.Get("/intervals", s.handleIntervals)
		r.Get("/buckets", s.handleBuckets)
		r.Get("/focus-sessions", s.handleFocusSessions)
		r.Get("/sessions", s.handleSessions)
		r.Get("/windows/status", s.handleWindowStatus)

		// Goals
		r.Get("/goals", s.handleListGoals)
		r.Post("/goals", s.handleCreateGoal)
		r.Route("/goals/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetGoal)
			r.Post("/definitions", s.handleUpdateDefinition)
			r.Post("/pause", s.handlePauseGoal)
			r.Post("/resume", s.handleResumeGoal)
			r.Post("/evaluate", s.handleEvaluateGoal)
			r.Get("/results", s.handleGoalResults)
			r.Get("/progress", s.handleGoalProgress)
		})
	})
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("Starting HTTP server", "address", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	logging.Logger.Info("HTTP server stopped")
	return nil
}
