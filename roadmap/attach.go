package roadmap

import (
	"github.com/MaastrichtU-BISS/navgraph"
)

// Attach adds p to g as a new vertex linked bidirectionally to every existing
// vertex within radius whose straight connection avoids the obstacles.
//
// When no vertex can be reached, g is left unchanged and Attach returns
// (-1, false). Callers that must keep their roadmap intact attach to a Clone.
func Attach(g *navgraph.Graph, p navgraph.Vec3, radius float64, obstacles []Obstacle) (int, bool) {
	if insideAny(p, obstacles) {
		return -1, false
	}

	r2 := radius * radius
	var targets []int
	for i, v := range g.Vertices() {
		if p.DistanceSquared(v.Position) > r2 {
			continue
		}
		if !IsPathClear(p, v.Position, obstacles) {
			continue
		}
		targets = append(targets, i)
	}
	if len(targets) == 0 {
		return -1, false
	}

	id := g.AddVertex(navgraph.NewVertex(p))
	for _, t := range targets {
		// id is fresh, so t != id and both are in range.
		_ = g.LinkBidirect(id, t)
	}
	return id, true
}
