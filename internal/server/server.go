package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/me/disksched/internal/config"
	"github.com/me/disksched/internal/metrics"
	"github.com/me/disksched/internal/shell"
	"github.com/me/disksched/internal/ui"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the disksched REST API server.
type Server struct {
	router       chi.Router
	logger       *slog.Logger
	config       config.ServerConfig
	startTime    time.Time
	workspace    *shell.Workspace
	runCtx       context.Context // parent context of simulation runs
	sseHeartbeat time.Duration
	ui           *ui.UI
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithRunContext sets the context simulation runs inherit. Runs outlive the
// HTTP request that started them, so they must not use the request context.
func WithRunContext(ctx context.Context) Option {
	return func(s *Server) {
		s.runCtx = ctx
	}
}

// WithSSEHeartbeat overrides the interval between SSE heartbeats.
func WithSSEHeartbeat(d time.Duration) Option {
	return func(s *Server) {
		s.sseHeartbeat = d
	}
}

// New creates a new Server with all routes registered.
func New(cfg config.ServerConfig, ws *shell.Workspace, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		router:       chi.NewRouter(),
		logger:       logger.With("component", "server"),
		config:       cfg,
		startTime:    time.Now(),
		workspace:    ws,
		runCtx:       context.Background(),
		sseHeartbeat: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.ui = ui.New(ws, logger, ui.Config{RunContext: s.runCtx})

	metrics.Register()
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	// UI routes (HTML)
	s.ui.RegisterRoutes(r)

	r.Handle("/metrics", promhttp.Handler())

	// API routes (JSON)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", s.handleDiscovery)
		r.Get("/health", s.handleHealth)

		// Stateless scheduling
		r.Get("/algorithms", s.handleListAlgorithms)
		r.Post("/schedule", s.handleSchedule)
		r.Post("/compare", s.handleCompare)

		// Interactive workspace
		r.Route("/workspace", func(r chi.Router) {
			r.Get("/", s.handleGetWorkspace)
			r.Route("/requests", func(r chi.Router) {
				r.Post("/", s.handleAddRequest)
				r.Delete("/", s.handleClearRequests)
				r.Delete("/{track}", s.handleRemoveRequest)
			})
			r.Put("/head", s.handleSetHead)
			r.Put("/algorithm", s.handleSetAlgorithm)
			r.Put("/direction", s.handleSetDirection)
			r.Post("/simulation", s.handleStartSimulation)
			r.Put("/simulation/stop", s.handleStopSimulation)
			r.Get("/notices", s.handleListNotices)
		})

		// SSE endpoints for real-time updates
		r.Route("/sse", func(r chi.Router) {
			r.Get("/workspace", s.handleSSEWorkspace)
		})
	})
}
