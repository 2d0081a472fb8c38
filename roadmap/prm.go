package roadmap

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/MaastrichtU-BISS/navgraph"
)

// ErrInvalidBounds is returned when the sampling box is empty or inverted.
var ErrInvalidBounds = errors.New("roadmap: invalid sampling bounds")

// Defaults for PRMConfig.
const (
	DefaultNumSamples       = 500
	DefaultConnectionRadius = 10.0
)

// PRMConfig parameterizes BuildPRM.
type PRMConfig struct {
	// NumSamples is the number of collision-free vertices to place.
	NumSamples int
	// ConnectionRadius links every pair of samples closer than this.
	ConnectionRadius float64
	// Min and Max span the sampling box. Equal Z values sample a flat layer.
	Min, Max navgraph.Vec3
	// Seed makes sampling reproducible.
	Seed uint64
	// Logger receives build progress. Nil discards it.
	Logger *slog.Logger
}

// DefaultPRMConfig samples a 100 x 100 flat area.
func DefaultPRMConfig() PRMConfig {
	return PRMConfig{
		NumSamples:       DefaultNumSamples,
		ConnectionRadius: DefaultConnectionRadius,
		Min:              navgraph.V3(0, 0, 0),
		Max:              navgraph.V3(100, 100, 0),
		Seed:             1,
	}
}

// PRMStats summarizes a BuildPRM run.
type PRMStats struct {
	Samples  int
	Attempts int
	Edges    int
	Rejected int
	Elapsed  time.Duration
}

// BuildPRM creates a probabilistic roadmap: uniform samples outside every
// obstacle, linked bidirectionally to each sample within the connection
// radius when the straight segment between them is clear.
//
// Sampling gives up after 10x NumSamples attempts, so a heavily blocked area
// may yield fewer vertices than requested.
func BuildPRM(cfg PRMConfig, obstacles []Obstacle) (*navgraph.Graph, PRMStats, error) {
	var stats PRMStats
	start := time.Now()

	if cfg.NumSamples < 0 || cfg.ConnectionRadius < 0 {
		return nil, stats, fmt.Errorf("roadmap: samples %d radius %g: %w", cfg.NumSamples, cfg.ConnectionRadius, ErrInvalidBounds)
	}
	if cfg.Max.X < cfg.Min.X || cfg.Max.Y < cfg.Min.Y || cfg.Max.Z < cfg.Min.Z {
		return nil, stats, fmt.Errorf("roadmap: min %v max %v: %w", cfg.Min, cfg.Max, ErrInvalidBounds)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Info("building roadmap", "samples", cfg.NumSamples, "radius", cfg.ConnectionRadius, "obstacles", len(obstacles))

	g := navgraph.NewGraph(navgraph.WithLogger(logger))
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	span := cfg.Max.Sub(cfg.Min)

	maxAttempts := cfg.NumSamples * 10
	for g.Len() < cfg.NumSamples && stats.Attempts < maxAttempts {
		stats.Attempts++
		p := navgraph.V3(
			cfg.Min.X+rng.Float64()*span.X,
			cfg.Min.Y+rng.Float64()*span.Y,
			cfg.Min.Z+rng.Float64()*span.Z,
		)
		if insideAny(p, obstacles) {
			continue
		}
		g.AddVertex(navgraph.NewVertex(p))
	}
	stats.Samples = g.Len()

	if stats.Samples < cfg.NumSamples {
		logger.Warn("sampling fell short", "generated", stats.Samples, "requested", cfg.NumSamples)
	}

	index := navgraph.NewSpatialIndex(g)
	for i, v := range g.Vertices() {
		nearby := index.WithinRadius(v.Position, cfg.ConnectionRadius)
		// Sorted so links are added in a reproducible order.
		slices.Sort(nearby)
		for _, j := range nearby {
			if j <= i {
				continue
			}
			other, _ := g.Vertex(j)
			if !IsPathClear(v.Position, other.Position, obstacles) {
				stats.Rejected++
				continue
			}
			if err := g.LinkBidirect(i, j); err != nil {
				return nil, stats, fmt.Errorf("roadmap: link %d-%d: %w", i, j, err)
			}
			stats.Edges++
		}
	}

	stats.Elapsed = time.Since(start)
	logger.Info("roadmap built",
		"vertices", stats.Samples,
		"edges", stats.Edges,
		"rejected", stats.Rejected,
		"elapsed", stats.Elapsed,
	)
	return g, stats, nil
}
