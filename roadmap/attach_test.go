package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaastrichtU-BISS/navgraph"
)

func TestAttach(t *testing.T) {
	g := Grid(3, 3, GridOptions{})

	id, ok := Attach(g, navgraph.V3(1.5, 1.5, 0), 1, nil)
	require.True(t, ok)
	assert.Equal(t, 9, id)

	v, _ := g.Vertex(id)
	assert.ElementsMatch(t, []int{4, 5, 7, 8}, v.Neighbors)
	for _, n := range v.Neighbors {
		other, _ := g.Vertex(n)
		assert.Contains(t, other.Neighbors, id)
	}
	assert.NoError(t, g.Validate())
}

func TestAttachRespectsObstacles(t *testing.T) {
	g := Grid(3, 1, GridOptions{})
	wall := []Obstacle{{Footprint: square(-1, 0.5, 1.2, 1)}}

	// Only vertex 2 is reachable past the wall.
	id, ok := Attach(g, navgraph.V3(1, 2, 0), 3, wall)
	require.True(t, ok)
	v, _ := g.Vertex(id)
	assert.Equal(t, []int{2}, v.Neighbors)
}

func TestAttachFailureLeavesGraphUnchanged(t *testing.T) {
	tests := []struct {
		name      string
		p         navgraph.Vec3
		radius    float64
		obstacles []Obstacle
	}{
		{"out of range", navgraph.V3(10, 10, 0), 1, nil},
		{"inside obstacle", navgraph.V3(1, 1, 0), 5, []Obstacle{{Footprint: square(0.5, 0.5, 1.5, 1.5)}}},
		{"all blocked", navgraph.V3(1, 5, 0), 10, []Obstacle{{Footprint: square(-1, 3, 3, 4)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Grid(3, 3, GridOptions{})
			before := g.Clone()

			id, ok := Attach(g, tt.p, tt.radius, tt.obstacles)
			assert.False(t, ok)
			assert.Equal(t, -1, id)
			assert.Equal(t, before.Vertices(), g.Vertices())
		})
	}
}
