package navgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MaastrichtU-BISS/navgraph"
)

// gridGraph builds a size x size unit grid where vertex (x, y) has index
// y*size+x. cut reports whether the link between (x, y) and (x+1, y) should
// be left out; nil keeps every link.
func gridGraph(t testing.TB, size int, cut func(x, y int) bool) *navgraph.Graph {
	t.Helper()

	vertices := make([]navgraph.Vertex, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			vertices = append(vertices, navgraph.NewVertex(navgraph.V3(float64(x), float64(y), 0)))
		}
	}
	g := navgraph.NewGraph(navgraph.WithVertices(vertices))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := y*size + x
			if x+1 < size && (cut == nil || !cut(x, y)) {
				require.NoError(t, g.LinkBidirect(i, i+1))
			}
			if y+1 < size {
				require.NoError(t, g.LinkBidirect(i, i+size))
			}
		}
	}
	return g
}

// requireConnected checks that consecutive waypoints are grid neighbors.
func requireConnected(t testing.TB, path navgraph.Path) {
	t.Helper()
	for i := 0; i+1 < len(path.Positions); i++ {
		d := path.Positions[i].Distance(path.Positions[i+1])
		require.LessOrEqual(t, d, math.Sqrt2, "waypoints %d and %d are not adjacent", i, i+1)
	}
}

func position(t testing.TB, g *navgraph.Graph, i int) navgraph.Vec3 {
	t.Helper()
	v, ok := g.Vertex(i)
	require.True(t, ok, "vertex %d", i)
	return v.Position
}
