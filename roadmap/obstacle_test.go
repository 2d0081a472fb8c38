package roadmap

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaastrichtU-BISS/navgraph"
)

func square(minX, minY, maxX, maxY float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
	}}
}

func TestObstacleContains(t *testing.T) {
	column := Obstacle{Footprint: square(0, 0, 10, 10)}
	slab := Obstacle{Footprint: square(0, 0, 10, 10), MinZ: 5, MaxZ: 8}

	assert.True(t, column.Contains(navgraph.V3(5, 5, 100)))
	assert.False(t, column.Contains(navgraph.V3(15, 5, 0)))

	assert.True(t, slab.Contains(navgraph.V3(5, 5, 6)))
	assert.False(t, slab.Contains(navgraph.V3(5, 5, 2)))
	assert.False(t, slab.Contains(navgraph.V3(5, 5, 9)))
}

func TestIsPathClear(t *testing.T) {
	obstacles := []Obstacle{{Footprint: square(4, 4, 6, 6)}}

	tests := []struct {
		name  string
		a, b  navgraph.Vec3
		clear bool
	}{
		{"passes beside", navgraph.V3(0, 0, 0), navgraph.V3(10, 0, 0), true},
		{"crosses", navgraph.V3(0, 5, 0), navgraph.V3(10, 5, 0), false},
		{"diagonal through", navgraph.V3(0, 0, 0), navgraph.V3(10, 10, 0), false},
		{"starts inside", navgraph.V3(5, 5, 0), navgraph.V3(5, 20, 0), false},
		{"entirely inside", navgraph.V3(4.5, 4.5, 0), navgraph.V3(5.5, 5.5, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.clear, IsPathClear(tt.a, tt.b, obstacles))
		})
	}
}

func TestIsPathClearHeights(t *testing.T) {
	obstacles := []Obstacle{{Footprint: square(4, 4, 6, 6), MinZ: 0, MaxZ: 10}}

	assert.False(t, IsPathClear(navgraph.V3(0, 5, 5), navgraph.V3(10, 5, 5), obstacles))
	assert.True(t, IsPathClear(navgraph.V3(0, 5, 20), navgraph.V3(10, 5, 20), obstacles), "flies over")
	assert.False(t, IsPathClear(navgraph.V3(0, 5, 20), navgraph.V3(10, 5, 5), obstacles), "descends into")
}

func TestCrossesAllowsBoundary(t *testing.T) {
	o := Obstacle{Footprint: square(0, 0, 2, 2)}

	assert.False(t, o.crosses(navgraph.V3(0, 0, 0), navgraph.V3(2, 0, 0)), "along an edge")
	assert.False(t, o.crosses(navgraph.V3(2, 2, 0), navgraph.V3(5, 5, 0)), "leaves from a corner")
	assert.True(t, o.crosses(navgraph.V3(0, 0, 0), navgraph.V3(2, 2, 0)), "diagonal through")
	assert.True(t, o.crosses(navgraph.V3(-1, 1, 0), navgraph.V3(3, 1, 0)), "straight through")

	// The stricter test refuses the edge.
	assert.True(t, o.BlocksSegment(navgraph.V3(0, 0, 0), navgraph.V3(2, 0, 0)))
}

func TestSegmentsIntersect(t *testing.T) {
	assert.True(t, segmentsIntersect(orb.Point{0, 0}, orb.Point{2, 2}, orb.Point{0, 2}, orb.Point{2, 0}))
	assert.False(t, segmentsIntersect(orb.Point{0, 0}, orb.Point{1, 1}, orb.Point{2, 2}, orb.Point{3, 0}))
	assert.False(t, segmentsIntersect(orb.Point{0, 0}, orb.Point{1, 1}, orb.Point{1, 1}, orb.Point{2, 0}), "shared endpoint")
	assert.True(t, segmentsIntersect(orb.Point{0, 0}, orb.Point{2, 0}, orb.Point{1, 0}, orb.Point{3, 0}), "collinear overlap")
}

func TestRemoveContained(t *testing.T) {
	outer := Obstacle{Footprint: square(0, 0, 10, 10)}
	inner := Obstacle{Footprint: square(2, 2, 4, 4)}
	apart := Obstacle{Footprint: square(20, 20, 30, 30)}
	tallInner := Obstacle{Footprint: square(2, 2, 4, 4), MinZ: 0, MaxZ: 50}
	lowOuter := Obstacle{Footprint: square(0, 0, 10, 10), MinZ: 0, MaxZ: 10}

	got := RemoveContained([]Obstacle{inner, outer, apart})
	assert.Equal(t, []Obstacle{outer, apart}, got)

	// A bounded obstacle does not swallow a taller one.
	got = RemoveContained([]Obstacle{tallInner, lowOuter})
	assert.Len(t, got, 2)

	// Identical obstacles keep exactly one.
	got = RemoveContained([]Obstacle{outer, outer})
	assert.Len(t, got, 1)

	assert.Empty(t, RemoveContained(nil))
}

func TestSimplifyObstacles(t *testing.T) {
	// A square with a slight bulge in its bottom edge.
	bumpy := Obstacle{Footprint: orb.Polygon{orb.Ring{
		{0, 0}, {5, 0.01}, {10, 0}, {10, 10}, {0, 10}, {0, 0},
	}}, MaxZ: 30}
	original := bumpy.Footprint.Clone()

	got := SimplifyObstacles([]Obstacle{bumpy}, 0.1)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Footprint[0], 5)
	assert.Equal(t, 30.0, got[0].MaxZ)
	assert.Equal(t, original, bumpy.Footprint, "input is not modified")

	// A tiny triangle would collapse and is kept.
	tiny := Obstacle{Footprint: orb.Polygon{orb.Ring{{0, 0}, {0.01, 0}, {0, 0.01}, {0, 0}}}}
	got = SimplifyObstacles([]Obstacle{tiny}, 1)
	assert.Equal(t, tiny.Footprint, got[0].Footprint)

	assert.Equal(t, []Obstacle{bumpy}, SimplifyObstacles([]Obstacle{bumpy}, 0))
}
