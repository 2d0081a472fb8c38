package navgraph

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// pointTolerance gives vertex entries a tiny extent; rtreego rejects empty rectangles.
const pointTolerance = 1e-9

// vertexEntry wraps a vertex for R-tree storage
type vertexEntry struct {
	index    int
	position Vec3
	bbox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *vertexEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// SpatialIndex answers nearest-vertex and radius queries over a snapshot of
// a graph's positions. It does not follow later mutations; rebuild it after
// adding, inserting or removing vertices.
type SpatialIndex struct {
	tree *rtreego.Rtree
	size int
}

// NewSpatialIndex indexes every vertex position of g.
func NewSpatialIndex(g *Graph) *SpatialIndex {
	tree := rtreego.NewTree(3, 25, 50) // 3D, min 25, max 50 entries per node

	for i, v := range g.vertices {
		tree.Insert(&vertexEntry{
			index:    i,
			position: v.Position,
			bbox:     toPoint(v.Position).ToRect(pointTolerance),
		})
	}

	return &SpatialIndex{tree: tree, size: len(g.vertices)}
}

// Len returns the number of indexed vertices.
func (si *SpatialIndex) Len() int { return si.size }

// Closest returns the index of the vertex nearest to point. Exact ties among
// the nearest candidates go to the lowest index, as in Graph.ClosestVertexTo.
func (si *SpatialIndex) Closest(point Vec3) (int, bool) {
	if si.size == 0 {
		return -1, false
	}

	// Pull a few candidates so exact ties can be resolved by index.
	k := min(8, si.size)
	candidates := si.tree.NearestNeighbors(k, toPoint(point))

	best, bestDist := -1, math.Inf(1)
	for _, c := range candidates {
		if c == nil {
			continue
		}
		e := c.(*vertexEntry)
		d := point.DistanceSquared(e.position)
		if d < bestDist || (d == bestDist && e.index < best) {
			best, bestDist = e.index, d
		}
	}
	return best, best >= 0
}

// WithinRadius returns the indices of vertices at most radius away from
// point, in no particular order.
func (si *SpatialIndex) WithinRadius(point Vec3, radius float64) []int {
	if si.size == 0 || radius < 0 {
		return nil
	}

	bbox, err := rtreego.NewRect(
		rtreego.Point{point.X - radius, point.Y - radius, point.Z - radius},
		[]float64{2*radius + pointTolerance, 2*radius + pointTolerance, 2*radius + pointTolerance},
	)
	if err != nil {
		return nil
	}

	r2 := radius * radius
	results := si.tree.SearchIntersect(bbox)
	indices := make([]int, 0, len(results))
	for _, item := range results {
		e := item.(*vertexEntry)
		if point.DistanceSquared(e.position) <= r2 {
			indices = append(indices, e.index)
		}
	}
	return indices
}

func toPoint(p Vec3) rtreego.Point {
	return rtreego.Point{p.X, p.Y, p.Z}
}
