package navgraph

import "math"

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// V3 is shorthand for Vec3{X: x, Y: y, Z: z}.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns p + other.
func (p Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: p.X + other.X, Y: p.Y + other.Y, Z: p.Z + other.Z}
}

// Sub returns p - other.
func (p Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// Scale multiplies every component by s.
func (p Vec3) Scale(s float64) Vec3 {
	return Vec3{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Dot returns the dot product of p and other.
func (p Vec3) Dot(other Vec3) float64 {
	return p.X*other.X + p.Y*other.Y + p.Z*other.Z
}

// LengthSquared returns |p|^2.
func (p Vec3) LengthSquared() float64 {
	return p.Dot(p)
}

// Length returns the Euclidean norm of p.
func (p Vec3) Length() float64 {
	return math.Sqrt(p.LengthSquared())
}

// DistanceSquared calculates the squared Euclidean distance between two points.
// It is the cost metric and the heuristic used by the search engine.
func (p Vec3) DistanceSquared(other Vec3) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance calculates Euclidean distance between two points
func (p Vec3) Distance(other Vec3) float64 {
	return math.Sqrt(p.DistanceSquared(other))
}

// heuristic estimates the remaining cost from a to b.
func heuristic(a, b Vec3) float64 {
	return a.DistanceSquared(b)
}
