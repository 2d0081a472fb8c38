package navgraph

import (
	"log/slog"
	"math"
	"slices"
)

// Vertex is one navigable point of a Graph.
type Vertex struct {
	// Position in world coordinates.
	Position Vec3 `json:"position"`
	// Neighbors holds indices of vertices reachable from this one.
	// Links are directed; symmetry is never implied.
	Neighbors []int `json:"neighbors"`
	// Penalty scales the cost of travelling into this vertex.
	// Higher means harder to traverse. Must be >= 0.
	Penalty float64 `json:"penalty"`
	// Payload is an opaque slot for caller data. The graph never reads it.
	Payload any `json:"-"`
}

// NewVertex creates a vertex at the given position with the default penalty of 1.
func NewVertex(position Vec3) Vertex {
	return Vertex{Position: position, Penalty: 1}
}

// Graph is an ordered, index-addressed collection of vertices.
//
// A Graph does no internal locking. Searches never write to the graph, so any
// number of them may run concurrently as long as no mutation runs at the same time.
type Graph struct {
	vertices []Vertex
	logger   *slog.Logger
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the logger used for search diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithVertices seeds the graph with a copy of the given vertices. Adjacency
// is not validated; see Validate.
func WithVertices(vertices []Vertex) Option {
	return func(g *Graph) { g.vertices = cloneVertices(vertices) }
}

// NewGraph creates a graph. It is empty unless WithVertices is given.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.vertices) }

// Vertex returns a copy of the vertex at index i. Its Neighbors slice is
// private to the caller and survives later mutations.
func (g *Graph) Vertex(i int) (Vertex, bool) {
	if i < 0 || i >= len(g.vertices) {
		return Vertex{}, false
	}
	v := g.vertices[i]
	v.Neighbors = slices.Clone(v.Neighbors)
	return v, true
}

// Vertices returns the backing slice without copying. It is a live view:
// callers must not modify it, and any mutation of the graph may rewrite it.
// Use Clone or Vertex for a stable snapshot.
func (g *Graph) Vertices() []Vertex { return g.vertices }

// SetVertices replaces the whole vertex set with a copy of vertices. Links
// must hold valid indices, otherwise searches touching them fail with
// ErrInvalidIndex.
func (g *Graph) SetVertices(vertices []Vertex) { g.vertices = cloneVertices(vertices) }

// SetPenalty changes the traversal penalty of vertex i. Negative values are
// clamped to zero.
func (g *Graph) SetPenalty(i int, penalty float64) bool {
	if i < 0 || i >= len(g.vertices) {
		return false
	}
	g.vertices[i].Penalty = math.Max(penalty, 0)
	return true
}

// Clone returns a deep copy of the adjacency structure. Payloads are shared.
func (g *Graph) Clone() *Graph {
	return &Graph{vertices: cloneVertices(g.vertices), logger: g.logger}
}

func cloneVertices(src []Vertex) []Vertex {
	if src == nil {
		return nil
	}
	vertices := make([]Vertex, len(src))
	for i, v := range src {
		v.Neighbors = slices.Clone(v.Neighbors)
		vertices[i] = v
	}
	return vertices
}

// ClosestVertexTo finds the vertex nearest to point.
// Ties go to the lowest index. Returns false on an empty graph.
//
// O(V); use a SpatialIndex for repeated queries on a static graph.
func (g *Graph) ClosestVertexTo(point Vec3) (int, bool) {
	if len(g.vertices) == 0 {
		return -1, false
	}

	nearest := 0
	minDist := point.DistanceSquared(g.vertices[0].Position)
	for i := 1; i < len(g.vertices); i++ {
		if d := point.DistanceSquared(g.vertices[i].Position); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest, true
}
