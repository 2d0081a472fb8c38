package roadmap

import (
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

// RemoveContained drops obstacles whose volume lies entirely inside another
// obstacle. Order of the survivors is preserved.
func RemoveContained(obstacles []Obstacle) []Obstacle {
	if len(obstacles) <= 1 {
		return obstacles
	}

	contained := make([]bool, len(obstacles))

	// Check each obstacle against all others
	for i := range obstacles {
		if contained[i] {
			continue
		}
		for j := range obstacles {
			if i == j || contained[j] {
				continue
			}
			if isContainedIn(obstacles[i], obstacles[j]) {
				contained[i] = true
				break
			}
		}
	}

	result := make([]Obstacle, 0, len(obstacles))
	for i, o := range obstacles {
		if !contained[i] {
			result = append(result, o)
		}
	}
	return result
}

// isContainedIn checks if obstacle a is fully contained within obstacle b.
func isContainedIn(a, b Obstacle) bool {
	if len(a.Footprint) == 0 || len(b.Footprint) == 0 || len(a.Footprint[0]) == 0 {
		return false
	}

	if !b.unbounded() && (a.unbounded() || a.MinZ < b.MinZ || a.MaxZ > b.MaxZ) {
		return false
	}

	// Quick bounding box check first
	ab, bb := a.Bound(), b.Bound()
	if !bb.Contains(ab.Min) || !bb.Contains(ab.Max) {
		return false
	}

	// Check if all vertices of the outer ring of a are inside b
	for _, p := range a.Footprint[0] {
		if !planar.PolygonContains(b.Footprint, p) {
			return false
		}
	}
	return true
}

// SimplifyObstacles reduces footprint detail with Douglas-Peucker at the given
// tolerance. Footprints that would collapse below a triangle are kept as is.
// A non-positive tolerance returns the input unchanged.
func SimplifyObstacles(obstacles []Obstacle, tolerance float64) []Obstacle {
	if tolerance <= 0 {
		return obstacles
	}

	dp := simplify.DouglasPeucker(tolerance)
	out := make([]Obstacle, len(obstacles))
	for i, o := range obstacles {
		out[i] = o
		if len(o.Footprint) == 0 {
			continue
		}
		// The simplifier works in place.
		fp := dp.Polygon(o.Footprint.Clone())
		if len(fp) == 0 || len(fp[0]) < 4 {
			continue
		}
		out[i].Footprint = fp
	}
	return out
}
