package navgraph

import "math"

// Simplify drops waypoints that deviate less than epsilon from the straight
// line between their neighbors (Douglas-Peucker). The first and last
// waypoints are always kept. Indices are filtered alongside Positions.
func (p Path) Simplify(epsilon float64) Path {
	if len(p.Positions) <= 2 || epsilon <= 0 {
		return p
	}

	keep := make([]bool, len(p.Positions))
	douglasPeucker(p.Positions, 0, len(p.Positions)-1, epsilon, keep)

	out := Path{Kind: p.Kind, Cost: p.Cost}
	for i, k := range keep {
		if !k {
			continue
		}
		out.Positions = append(out.Positions, p.Positions[i])
		if i < len(p.Indices) {
			out.Indices = append(out.Indices, p.Indices[i])
		}
	}
	return out
}

// douglasPeucker marks the points of points[first..last] to keep.
func douglasPeucker(points []Vec3, first, last int, epsilon float64, keep []bool) {
	keep[first] = true
	keep[last] = true
	if last-first < 2 {
		return
	}

	// Find the point with maximum distance from line between first and last
	dmax := 0.0
	index := first
	for i := first + 1; i < last; i++ {
		d := perpendicularDistance(points[i], points[first], points[last])
		if d > dmax {
			index = i
			dmax = d
		}
	}

	if dmax > epsilon {
		douglasPeucker(points, first, index, epsilon, keep)
		douglasPeucker(points, index, last, epsilon, keep)
	}
}

// perpendicularDistance calculates the distance from point to the line
// through lineStart and lineEnd.
func perpendicularDistance(point, lineStart, lineEnd Vec3) float64 {
	dir := lineEnd.Sub(lineStart)
	mag := dir.Length()
	if mag == 0 {
		return point.Distance(lineStart)
	}
	dir = dir.Scale(1 / mag)

	pv := point.Sub(lineStart)
	// Remove the component along the line; what is left is perpendicular.
	along := dir.Scale(pv.Dot(dir))
	return math.Sqrt(pv.Sub(along).LengthSquared())
}
