package navgraph

import "slices"

// PathKind shows whether a search reached its goal.
type PathKind int

const (
	// Full means a connected route from start to goal was found.
	Full PathKind = iota
	// Partial means the goal is unreachable. The path leads to the reachable
	// vertex that scored best against the goal, which happens with isolated
	// islands of vertices.
	Partial
)

func (k PathKind) String() string {
	switch k {
	case Full:
		return "full"
	case Partial:
		return "partial"
	default:
		return "unknown"
	}
}

// Path is the result of a search. Indices and Positions run from the start
// vertex to the last vertex reached (the goal when Kind is Full).
type Path struct {
	Kind      PathKind `json:"kind"`
	Indices   []int    `json:"indices"`
	Positions []Vec3   `json:"positions"`
	// Cost is the accumulated g-score of the last vertex.
	Cost float64 `json:"cost"`
}

// Len returns the number of waypoints.
func (p Path) Len() int { return len(p.Positions) }

// Length sums the Euclidean distance between consecutive waypoints.
func (p Path) Length() float64 {
	var total float64
	for i := 0; i < len(p.Positions)-1; i++ {
		total += p.Positions[i].Distance(p.Positions[i+1])
	}
	return total
}

// End returns the last waypoint.
func (p Path) End() (Vec3, bool) {
	if len(p.Positions) == 0 {
		return Vec3{}, false
	}
	return p.Positions[len(p.Positions)-1], true
}

// reconstructParents walks the parent chain back from last and returns the
// indices in start -> last order.
func reconstructParents(parents []int, last int) []int {
	var indices []int
	for cur := last; cur >= 0; cur = parents[cur] {
		indices = append(indices, cur)
	}
	slices.Reverse(indices)
	return indices
}

// positionsOf maps vertex indices to positions, appending to dst.
func (g *Graph) positionsOf(dst []Vec3, indices []int) []Vec3 {
	for _, i := range indices {
		dst = append(dst, g.vertices[i].Position)
	}
	return dst
}
