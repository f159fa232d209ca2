package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/raaihank/nomoji/internal/config"
	"github.com/raaihank/nomoji/internal/emoji"
	"github.com/raaihank/nomoji/internal/logger"
)

// Server exposes the emoji filter as an HTTP service.
type Server struct {
	config  *config.Config
	logger  *logger.Logger
	router  *mux.Router
	server  *http.Server
	limiter *RateLimiter

	mu       sync.RWMutex
	stripper *emoji.Stripper
}

// New creates a new strip server instance
func New(cfg *config.Config, log *logger.Logger) (*Server, error) {
	stripper, err := emoji.New(cfg.Strip, log.WithComponent("emoji"))
	if err != nil {
		return nil, fmt.Errorf("failed to create stripper: %w", err)
	}

	router := mux.NewRouter()

	server := &Server{
		config:   cfg,
		logger:   log.WithComponent("server"),
		router:   router,
		limiter:  NewRateLimiter(&cfg.Server),
		stripper: stripper,
	}

	server.setupRoutes()

	server.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Info endpoint
	s.router.HandleFunc("/info", s.handleInfo).Methods("GET")

	// Strip API
	api := s.router.PathPrefix("/v1").Subrouter()
	api.Use(s.loggingMiddleware)
	api.Use(s.rateLimitMiddleware)
	api.HandleFunc("/strip", s.handleStrip).Methods("POST")
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting nomoji strip server",
		zap.Int("port", s.config.Server.Port),
		zap.Strings("enabled_blocks", s.currentStripper().EnabledBlocks()),
	)

	s.limiter.StartCleanupRoutine()

	return s.server.ListenAndServe()
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping nomoji strip server")
	return s.server.Shutdown(ctx)
}

// Reload swaps in a stripper built from new configuration. Used by the
// config watcher so the enabled block set can change without a restart.
func (s *Server) Reload(cfg *config.Config) error {
	stripper, err := emoji.New(cfg.Strip, s.logger.WithComponent("emoji"))
	if err != nil {
		return fmt.Errorf("failed to rebuild stripper: %w", err)
	}

	s.mu.Lock()
	s.stripper = stripper
	s.mu.Unlock()

	s.logger.Info("Configuration reloaded",
		zap.Strings("enabled_blocks", stripper.EnabledBlocks()),
	)
	return nil
}

func (s *Server) currentStripper() *emoji.Stripper {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stripper
}

// Handler returns the server's root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","timestamp":"%s"}`, time.Now().Format(time.RFC3339))
}

// handleInfo handles info requests
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{
		"name":"nomoji",
		"version":"0.1.0",
		"blocks_enabled":%d
	}`, len(s.currentStripper().EnabledBlocks()))
}
