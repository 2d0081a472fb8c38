package roadmap

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/MaastrichtU-BISS/navgraph"
)

// Obstacle is a blocked volume: a planar footprint extruded between MinZ and
// MaxZ. When MaxZ <= MinZ the column is unbounded in height.
type Obstacle struct {
	Footprint orb.Polygon
	MinZ      float64
	MaxZ      float64
}

// Bound returns the planar bounding box of the footprint.
func (o Obstacle) Bound() orb.Bound {
	return o.Footprint.Bound()
}

func (o Obstacle) unbounded() bool { return o.MaxZ <= o.MinZ }

// overlapsHeight reports whether [lo, hi] intersects the obstacle's height range.
func (o Obstacle) overlapsHeight(lo, hi float64) bool {
	if o.unbounded() {
		return true
	}
	return hi >= o.MinZ && lo <= o.MaxZ
}

// Contains reports whether p lies inside the obstacle volume.
func (o Obstacle) Contains(p navgraph.Vec3) bool {
	if len(o.Footprint) == 0 || !o.overlapsHeight(p.Z, p.Z) {
		return false
	}
	return planar.PolygonContains(o.Footprint, orb.Point{p.X, p.Y})
}

// BlocksSegment reports whether the straight segment a-b passes through the obstacle.
func (o Obstacle) BlocksSegment(a, b navgraph.Vec3) bool {
	if len(o.Footprint) == 0 || !o.overlapsHeight(math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)) {
		return false
	}

	p1, p2 := orb.Point{a.X, a.Y}, orb.Point{b.X, b.Y}

	// Check if the segment crosses any ring edge
	for _, ring := range o.Footprint {
		for i := 0; i+1 < len(ring); i++ {
			if segmentsIntersect(p1, p2, ring[i], ring[i+1]) {
				return true
			}
		}
	}

	// Check endpoints and the midpoint (handles a segment entirely inside)
	mid := orb.Point{(p1[0] + p2[0]) / 2, (p1[1] + p2[1]) / 2}
	return planar.PolygonContains(o.Footprint, p1) ||
		planar.PolygonContains(o.Footprint, p2) ||
		planar.PolygonContains(o.Footprint, mid)
}

// crosses is BlocksSegment with the footprint boundary treated as free
// space, so segments may run along edges and between corners.
func (o Obstacle) crosses(a, b navgraph.Vec3) bool {
	if len(o.Footprint) == 0 || !o.overlapsHeight(math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)) {
		return false
	}

	p1, p2 := orb.Point{a.X, a.Y}, orb.Point{b.X, b.Y}
	for _, ring := range o.Footprint {
		for i := 0; i+1 < len(ring); i++ {
			if segmentsIntersect(p1, p2, ring[i], ring[i+1]) && !touchesOnly(p1, p2, ring[i], ring[i+1]) {
				return true
			}
		}
	}

	mid := orb.Point{(p1[0] + p2[0]) / 2, (p1[1] + p2[1]) / 2}
	return o.strictlyContains(p1) || o.strictlyContains(p2) || o.strictlyContains(mid)
}

// strictlyContains reports whether p lies inside the footprint and off its boundary.
func (o Obstacle) strictlyContains(p orb.Point) bool {
	if !planar.PolygonContains(o.Footprint, p) {
		return false
	}
	for _, ring := range o.Footprint {
		for i := 0; i+1 < len(ring); i++ {
			if onEdge(ring[i], ring[i+1], p) {
				return false
			}
		}
	}
	return true
}

// touchesOnly reports whether an endpoint of p1-p2 lies on edge e1-e2.
// Whether such a segment enters the interior is left to the midpoint test.
func touchesOnly(p1, p2, e1, e2 orb.Point) bool {
	return onEdge(e1, e2, p1) || onEdge(e1, e2, p2)
}

// onEdge reports whether q lies on segment p-r within a small tolerance.
func onEdge(p, r, q orb.Point) bool {
	scale := math.Max(math.Abs(r[0]-p[0]), math.Abs(r[1]-p[1]))
	eps := 1e-9 * math.Max(scale, 1) * math.Max(scale, 1)
	return math.Abs(direction(p, r, q)) <= eps && onSegment(p, r, q)
}

// IsPathClear checks if a straight line between two points avoids every obstacle.
func IsPathClear(a, b navgraph.Vec3, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if o.BlocksSegment(a, b) {
			return false
		}
	}
	return true
}

// insideAny reports whether p lies in any obstacle.
func insideAny(p navgraph.Vec3, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if o.Contains(p) {
			return true
		}
	}
	return false
}

// segmentsIntersect checks if segments p1-p2 and p3-p4 intersect. Segments
// that only share an endpoint do not count.
func segmentsIntersect(p1, p2, p3, p4 orb.Point) bool {
	if p1 == p3 || p1 == p4 || p2 == p3 || p2 == p4 {
		return false
	}

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Collinear cases
	switch {
	case d1 == 0 && onSegment(p3, p4, p1):
		return true
	case d2 == 0 && onSegment(p3, p4, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, p3):
		return true
	case d4 == 0 && onSegment(p1, p2, p4):
		return true
	}
	return false
}

// direction calculates the cross product to determine orientation
func direction(p1, p2, p3 orb.Point) float64 {
	return (p3[0]-p1[0])*(p2[1]-p1[1]) - (p2[0]-p1[0])*(p3[1]-p1[1])
}

// onSegment checks if q lies within the bounding box of segment p-r
func onSegment(p, r, q orb.Point) bool {
	return q[0] <= math.Max(p[0], r[0]) && q[0] >= math.Min(p[0], r[0]) &&
		q[1] <= math.Max(p[1], r[1]) && q[1] >= math.Min(p[1], r[1])
}
