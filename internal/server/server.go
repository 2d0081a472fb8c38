// Package server exposes a roadmap and its route search over HTTP.
//
// The server owns a single roadmap guarded by a sync.RWMutex. Route queries
// take a read lock, attach their endpoints to a private clone and search it,
// so any number of them run concurrently. Rebuilding the roadmap swaps it
// under the write lock.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/MaastrichtU-BISS/navgraph"
	"github.com/MaastrichtU-BISS/navgraph/internal/config"
	"github.com/MaastrichtU-BISS/navgraph/roadmap"
)

const shutdownTimeout = 5 * time.Second

// Server is the navgraph HTTP service.
type Server struct {
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *Metrics
	tracer   trace.Tracer
	engine   *gin.Engine

	// buildMu serializes roadmap builds so the existence check and the swap
	// happen as one step.
	buildMu sync.Mutex

	mu         sync.RWMutex
	graph      *navgraph.Graph
	obstacles  []roadmap.Obstacle
	configured []roadmap.Obstacle
}

// New creates a server with its own metrics registry. A nil logger discards output.
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		registry: reg,
		metrics:  NewMetrics(reg),
		tracer:   otel.Tracer("navgraph/server"),
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(s.loggingMiddleware())
	r.Use(corsMiddleware(s.cfg.Server.AllowedOrigin))

	r.GET("/health", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	limited := r.Group("/")
	limited.Use(rateLimitMiddleware(s.cfg.Server.RateLimit, s.cfg.Server.Burst, s.metrics.RateLimitedTotal.Inc))
	limited.POST("/roadmap", s.handleBuildRoadmap)
	limited.GET("/roadmap/lines", s.handleRoadmapLines)
	limited.POST("/route", s.handleRoute)
	return r
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.engine }

// SetRoadmap replaces the served roadmap and the obstacles used to attach
// route endpoints.
func (s *Server) SetRoadmap(g *navgraph.Graph, obstacles []roadmap.Obstacle) {
	s.mu.Lock()
	s.graph = g
	s.obstacles = obstacles
	s.mu.Unlock()

	if g != nil {
		s.metrics.RoadmapVertices.Set(float64(g.Len()))
	}
}

// SetObstacles sets the obstacles a build uses when the request carries none,
// typically those loaded from the configured obstacle directory.
func (s *Server) SetObstacles(obstacles []roadmap.Obstacle) {
	s.mu.Lock()
	s.configured = obstacles
	s.mu.Unlock()
}

// Obstacles returns the obstacles set with SetObstacles.
func (s *Server) Obstacles() []roadmap.Obstacle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.configured
}

// Roadmap returns the current roadmap, nil before one is built.
func (s *Server) Roadmap() (*navgraph.Graph, []roadmap.Obstacle) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph, s.obstacles
}

// BuildRoadmap builds a PRM with cfg and installs it.
func (s *Server) BuildRoadmap(cfg roadmap.PRMConfig, obstacles []roadmap.Obstacle) (roadmap.PRMStats, error) {
	obstacles = roadmap.SimplifyObstacles(roadmap.RemoveContained(obstacles), s.cfg.Roadmap.SimplifyTolerance)
	if cfg.Logger == nil {
		cfg.Logger = s.logger
	}

	g, stats, err := roadmap.BuildPRM(cfg, obstacles)
	if err != nil {
		return stats, err
	}
	s.metrics.RoadmapBuildSeconds.Observe(stats.Elapsed.Seconds())
	s.SetRoadmap(g, obstacles)
	return stats, nil
}

// PRMConfig returns the configured roadmap parameters.
func (s *Server) PRMConfig() roadmap.PRMConfig {
	r := s.cfg.Roadmap
	return roadmap.PRMConfig{
		NumSamples:       r.NumSamples,
		ConnectionRadius: r.ConnectionRadius,
		Min:              r.Min,
		Max:              r.Max,
		Seed:             r.Seed,
		Logger:           s.logger,
	}
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
