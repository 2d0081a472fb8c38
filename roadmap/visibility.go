package roadmap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/MaastrichtU-BISS/navgraph"
)

// MaxVisibilityVertices bounds BuildVisibility; the edge check is quadratic.
const MaxVisibilityVertices = 1000

// ErrTooManyVertices is returned when a visibility graph would exceed MaxVisibilityVertices.
var ErrTooManyVertices = errors.New("roadmap: too many visibility vertices")

// BuildVisibility constructs a visibility graph. Its vertices are the given
// points (in order, so points[i] has index i) followed by the distinct
// footprint corners of every obstacle at the obstacle's MinZ. Each pair of
// vertices with a clear line of sight is linked bidirectionally.
func BuildVisibility(points []navgraph.Vec3, obstacles []Obstacle, logger *slog.Logger) (*navgraph.Graph, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g := navgraph.NewGraph(navgraph.WithLogger(logger))
	seen := make(map[navgraph.Vec3]bool)

	for _, p := range points {
		g.AddVertex(navgraph.NewVertex(p))
		seen[p] = true
	}

	for _, o := range obstacles {
		if len(o.Footprint) == 0 {
			continue
		}
		ring := o.Footprint[0]
		for i, c := range ring {
			// Closed rings repeat the first point.
			if i == len(ring)-1 && len(ring) > 1 && c == ring[0] {
				break
			}
			p := navgraph.V3(c[0], c[1], o.MinZ)
			if seen[p] {
				continue
			}
			seen[p] = true
			g.AddVertex(navgraph.NewVertex(p))
		}
	}

	n := g.Len()
	logger.Debug("visibility vertices", "count", n, "pairs", n*(n-1)/2)
	if n > MaxVisibilityVertices {
		return nil, fmt.Errorf("roadmap: %d vertices (limit %d): %w", n, MaxVisibilityVertices, ErrTooManyVertices)
	}

	edges := 0
	vertices := g.Vertices()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !visible(vertices[i].Position, vertices[j].Position, obstacles) {
				continue
			}
			_ = g.LinkBidirect(i, j)
			edges++
		}
	}

	logger.Debug("visibility graph built", "vertices", n, "edges", edges)
	return g, nil
}

// visible is IsPathClear relaxed for corners: a segment whose endpoints sit
// on a footprint boundary is only blocked when it crosses the footprint.
func visible(a, b navgraph.Vec3, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if o.crosses(a, b) {
			return false
		}
	}
	return true
}
