package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaastrichtU-BISS/navgraph"
)

func linkCount(g *navgraph.Graph) int {
	n := 0
	for _, v := range g.Vertices() {
		n += len(v.Neighbors)
	}
	return n
}

func TestGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		opts          GridOptions
		vertices      int
		links         int
	}{
		{"orthogonal", 3, 2, GridOptions{}, 6, 14},
		{"diagonal", 3, 2, GridOptions{Diagonal: true}, 6, 22},
		{"single row", 4, 1, GridOptions{}, 4, 6},
		{"single vertex", 1, 1, GridOptions{}, 1, 0},
		{"empty", 0, 5, GridOptions{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Grid(tt.width, tt.height, tt.opts)
			assert.Equal(t, tt.vertices, g.Len())
			assert.Equal(t, tt.links, linkCount(g))
			assert.NoError(t, g.Validate())
		})
	}
}

func TestGridLayout(t *testing.T) {
	g := Grid(3, 2, GridOptions{Spacing: 2, Z: 7})

	v, ok := g.Vertex(5)
	require.True(t, ok)
	assert.Equal(t, navgraph.V3(4, 2, 7), v.Position)
	assert.ElementsMatch(t, []int{4, 2}, v.Neighbors)

	path, err := g.Search(0, 5)
	require.NoError(t, err)
	assert.Equal(t, navgraph.Full, path.Kind)
	assert.Equal(t, 4, path.Len())
}
