package navgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaastrichtU-BISS/navgraph"
)

func TestVec3(t *testing.T) {
	a, b := navgraph.V3(1, 2, 3), navgraph.V3(4, 6, 3)

	assert.Equal(t, navgraph.V3(5, 8, 6), a.Add(b))
	assert.Equal(t, navgraph.V3(3, 4, 0), b.Sub(a))
	assert.Equal(t, navgraph.V3(2, 4, 6), a.Scale(2))
	assert.Equal(t, 4.0+12+9, a.Dot(b))
	assert.Equal(t, 14.0, a.LengthSquared())
	assert.InDelta(t, math.Sqrt(14), a.Length(), 1e-12)
	assert.Equal(t, 25.0, a.DistanceSquared(b))
	assert.Equal(t, 5.0, a.Distance(b))
}

func TestPathKindString(t *testing.T) {
	assert.Equal(t, "full", navgraph.Full.String())
	assert.Equal(t, "partial", navgraph.Partial.String())
	assert.Equal(t, "unknown", navgraph.PathKind(9).String())
}

func TestPathLengthAndEnd(t *testing.T) {
	var empty navgraph.Path
	_, ok := empty.End()
	assert.False(t, ok)
	assert.Zero(t, empty.Length())

	p := navgraph.Path{Positions: []navgraph.Vec3{
		navgraph.V3(0, 0, 0), navgraph.V3(3, 4, 0), navgraph.V3(3, 4, 2),
	}}
	assert.Equal(t, 7.0, p.Length())
	end, ok := p.End()
	require.True(t, ok)
	assert.Equal(t, navgraph.V3(3, 4, 2), end)
}

func TestSimplifyDropsCollinearWaypoints(t *testing.T) {
	g := gridGraph(t, 6, nil)
	path, err := g.Search(0, 5)
	require.NoError(t, err)
	require.Equal(t, 6, path.Len())

	s := path.Simplify(0.01)
	assert.Equal(t, []int{0, 5}, s.Indices)
	assert.Equal(t, []navgraph.Vec3{navgraph.V3(0, 0, 0), navgraph.V3(5, 0, 0)}, s.Positions)
	assert.Equal(t, path.Kind, s.Kind)
	assert.Equal(t, path.Cost, s.Cost)
}

func TestSimplifyKeepsCorners(t *testing.T) {
	p := navgraph.Path{
		Indices: []int{0, 1, 2, 3, 4},
		Positions: []navgraph.Vec3{
			navgraph.V3(0, 0, 0),
			navgraph.V3(1, 0, 0),
			navgraph.V3(2, 0, 0),
			navgraph.V3(2, 1, 0),
			navgraph.V3(2, 2, 0),
		},
	}

	s := p.Simplify(0.1)
	assert.Equal(t, []int{0, 2, 4}, s.Indices)

	// Large tolerance collapses to the endpoints.
	s = p.Simplify(10)
	assert.Equal(t, []int{0, 4}, s.Indices)

	// Non-positive tolerance is a no-op.
	assert.Equal(t, p, p.Simplify(0))
}

func TestSimplifyShortPath(t *testing.T) {
	p := navgraph.Path{Positions: []navgraph.Vec3{navgraph.V3(0, 0, 0), navgraph.V3(1, 1, 1)}}
	assert.Equal(t, p, p.Simplify(1))
}
