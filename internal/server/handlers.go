package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/geojson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MaastrichtU-BISS/navgraph"
	"github.com/MaastrichtU-BISS/navgraph/roadmap"
)

// BuildRoadmapRequest is the body of POST /roadmap. Zero values fall back to
// the configured roadmap parameters.
type BuildRoadmapRequest struct {
	NumSamples       int             `json:"numSamples" binding:"gte=0,lte=100000"`
	ConnectionRadius float64         `json:"connectionRadius" binding:"gte=0"`
	Seed             uint64          `json:"seed"`
	Min              *navgraph.Vec3  `json:"min,omitempty"`
	Max              *navgraph.Vec3  `json:"max,omitempty"`
	Force            bool            `json:"force,omitempty"`
	Obstacles        json.RawMessage `json:"obstacles,omitempty"` // GeoJSON FeatureCollection
}

// RouteRequest is the body of POST /route.
type RouteRequest struct {
	Start     *navgraph.Vec3 `json:"start" binding:"required"`
	End       *navgraph.Vec3 `json:"end" binding:"required"`
	Algorithm string         `json:"algorithm" binding:"omitempty,oneof=astar bounded"`
	// Simplify is the Douglas-Peucker tolerance; 0 keeps every waypoint.
	Simplify      float64 `json:"simplify" binding:"gte=0"`
	MaxExpansions int     `json:"maxExpansions" binding:"gte=0"`
}

// RouteResponse is returned by POST /route.
type RouteResponse struct {
	Kind      string           `json:"kind"`
	Path      []navgraph.Vec3  `json:"path"`
	Length    float64          `json:"length"`
	Cost      float64          `json:"cost"`
	Waypoints int              `json:"waypoints"`
	Feature   *geojson.Feature `json:"feature"`
}

// GET /health
func (s *Server) handleHealth(c *gin.Context) {
	g, _ := s.Roadmap()

	status := "ready"
	vertices := 0
	if g == nil {
		status = "waiting for roadmap"
	} else {
		vertices = g.Len()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     status,
		"hasRoadmap": g != nil,
		"vertices":   vertices,
	})
}

// POST /roadmap
func (s *Server) handleBuildRoadmap(c *gin.Context) {
	var req BuildRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	if g, _ := s.Roadmap(); g != nil && !req.Force {
		s.logger.Warn("roadmap already exists", "request_id", c.GetString(requestIDKey))
		c.JSON(http.StatusConflict, gin.H{
			"error":   "roadmap already exists",
			"message": "set force to true to rebuild",
		})
		return
	}

	cfg := s.PRMConfig()
	if req.NumSamples > 0 {
		cfg.NumSamples = req.NumSamples
	}
	if req.ConnectionRadius > 0 {
		cfg.ConnectionRadius = req.ConnectionRadius
	}
	if req.Seed != 0 {
		cfg.Seed = req.Seed
	}
	if req.Min != nil {
		cfg.Min = *req.Min
	}
	if req.Max != nil {
		cfg.Max = *req.Max
	}

	obstacles := s.Obstacles()
	if len(req.Obstacles) > 0 && string(req.Obstacles) != "null" {
		parsed, err := roadmap.ParseObstacles(req.Obstacles)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		obstacles = parsed
	} else if len(obstacles) > 0 {
		s.logger.Info("using configured obstacles", "obstacles", len(obstacles), "request_id", c.GetString(requestIDKey))
	}

	stats, err := s.BuildRoadmap(cfg, obstacles)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, roadmap.ErrInvalidBounds) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vertices":  stats.Samples,
		"edges":     stats.Edges,
		"rejected":  stats.Rejected,
		"obstacles": len(obstacles),
		"elapsedMs": stats.Elapsed.Milliseconds(),
	})
}

// GET /roadmap/lines
func (s *Server) handleRoadmapLines(c *gin.Context) {
	g, _ := s.Roadmap()
	if g == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roadmap not built, POST /roadmap first"})
		return
	}
	c.JSON(http.StatusOK, g.EdgesFeatureCollection())
}

// POST /route
func (s *Server) handleRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	algorithm := navgraph.Algorithm(req.Algorithm)
	if algorithm == "" {
		algorithm = navgraph.Algorithm(s.cfg.Search.Algorithm)
	}
	maxExpansions := req.MaxExpansions
	if maxExpansions == 0 {
		maxExpansions = s.cfg.Search.MaxExpansions
	}

	_, span := s.tracer.Start(c.Request.Context(), "server.route",
		trace.WithAttributes(
			attribute.String("navgraph.algorithm", string(algorithm)),
			attribute.String("navgraph.request_id", c.GetString(requestIDKey)),
		),
	)
	defer span.End()

	base, obstacles := s.Roadmap()
	if base == nil {
		span.SetStatus(codes.Error, "roadmap not built")
		c.JSON(http.StatusBadRequest, gin.H{"error": "roadmap not built, POST /roadmap first"})
		return
	}

	g := base.Clone()
	radius := s.cfg.Search.AttachRadius
	from, ok := roadmap.Attach(g, *req.Start, radius, obstacles)
	if !ok {
		span.SetStatus(codes.Error, "start not attachable")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not connect start point to the roadmap"})
		return
	}
	to, ok := roadmap.Attach(g, *req.End, radius, obstacles)
	if !ok {
		span.SetStatus(codes.Error, "end not attachable")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not connect end point to the roadmap"})
		return
	}

	start := time.Now()
	path, err := g.Find(from, to, navgraph.WithAlgorithm(algorithm), navgraph.WithMaxExpansions(maxExpansions))
	s.metrics.RouteDurationSeconds.WithLabelValues(string(algorithm)).Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("route search failed", "error", err, "request_id", c.GetString(requestIDKey))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.Simplify > 0 {
		path = path.Simplify(req.Simplify)
	}
	s.metrics.RouteTotal.WithLabelValues(string(algorithm), path.Kind.String()).Inc()
	span.SetAttributes(
		attribute.String("navgraph.kind", path.Kind.String()),
		attribute.Int("navgraph.waypoints", path.Len()),
	)

	s.logger.Info("route found",
		"kind", path.Kind,
		"waypoints", path.Len(),
		"length", path.Length(),
		"request_id", c.GetString(requestIDKey),
	)

	c.JSON(http.StatusOK, RouteResponse{
		Kind:      path.Kind.String(),
		Path:      path.Positions,
		Length:    path.Length(),
		Cost:      path.Cost,
		Waypoints: path.Len(),
		Feature:   path.Feature(),
	})
}
