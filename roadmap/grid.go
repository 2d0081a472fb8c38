// Package roadmap builds navigation graphs for navgraph: regular grids,
// probabilistic roadmaps and visibility graphs, optionally avoiding
// obstacle volumes. It also attaches arbitrary points to an existing graph.
package roadmap

import (
	"github.com/MaastrichtU-BISS/navgraph"
)

// GridOptions tunes Grid.
type GridOptions struct {
	// Spacing between neighboring vertices. Defaults to 1.
	Spacing float64
	// Diagonal adds links to the four diagonal neighbors.
	Diagonal bool
	// Z is the height of every vertex.
	Z float64
}

// Grid builds a width x height lattice in the XY plane with bidirectional
// links between neighbors. Vertex (x, y) has index y*width + x.
func Grid(width, height int, opts GridOptions) *navgraph.Graph {
	if opts.Spacing <= 0 {
		opts.Spacing = 1
	}

	g := navgraph.NewGraph()
	if width <= 0 || height <= 0 {
		return g
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.AddVertex(navgraph.NewVertex(navgraph.V3(float64(x)*opts.Spacing, float64(y)*opts.Spacing, opts.Z)))
		}
	}

	idx := func(x, y int) int { return y*width + x }
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Distinct in-range indices never fail to link.
			if x+1 < width {
				_ = g.LinkBidirect(idx(x, y), idx(x+1, y))
			}
			if y+1 < height {
				_ = g.LinkBidirect(idx(x, y), idx(x, y+1))
			}
			if opts.Diagonal && x+1 < width && y+1 < height {
				_ = g.LinkBidirect(idx(x, y), idx(x+1, y+1))
				_ = g.LinkBidirect(idx(x+1, y), idx(x, y+1))
			}
		}
	}
	return g
}
