package navgraph

import "slices"

// AddVertex appends a copy of v and returns its index. Existing indices are untouched.
func (g *Graph) AddVertex(v Vertex) int {
	v.Neighbors = slices.Clone(v.Neighbors)
	g.vertices = append(g.vertices, v)
	return len(g.vertices) - 1
}

// InsertVertex places v at index, shifting later vertices up by one.
// Every neighbor reference >= index held by another vertex is incremented so
// links keep pointing at the same vertices. v.Neighbors must already be
// expressed in post-insert indices.
//
// Returns false (and does nothing) unless 0 <= index <= Len().
func (g *Graph) InsertVertex(index int, v Vertex) bool {
	if index < 0 || index > len(g.vertices) {
		return false
	}

	for i := range g.vertices {
		shiftUp(g.vertices[i].Neighbors, index)
	}
	v.Neighbors = slices.Clone(v.Neighbors)
	g.vertices = slices.Insert(g.vertices, index, v)
	return true
}

// RemoveVertex deletes the vertex at index. Links to it are dropped from every
// other vertex and references above index are decremented.
func (g *Graph) RemoveVertex(index int) (Vertex, bool) {
	if index < 0 || index >= len(g.vertices) {
		return Vertex{}, false
	}

	removed := g.vertices[index]
	g.vertices = slices.Delete(g.vertices, index, index+1)
	for i := range g.vertices {
		g.vertices[i].Neighbors = dropAndShiftDown(g.vertices[i].Neighbors, index)
	}
	return removed, true
}

// PopVertex removes the last vertex, cleaning up links to it.
func (g *Graph) PopVertex() (Vertex, bool) {
	if len(g.vertices) == 0 {
		return Vertex{}, false
	}
	return g.RemoveVertex(len(g.vertices) - 1)
}

// LinkUnidirect adds a one-way link a -> b. Repeated calls are no-ops, as is
// a call where either index is out of range. A self link is refused with a
// *CyclicReferenceError.
func (g *Graph) LinkUnidirect(a, b int) error {
	if a == b {
		return cyclicReference(a)
	}
	if a < 0 || a >= len(g.vertices) || b < 0 || b >= len(g.vertices) {
		return nil
	}
	if !slices.Contains(g.vertices[a].Neighbors, b) {
		g.vertices[a].Neighbors = append(g.vertices[a].Neighbors, b)
	}
	return nil
}

// LinkBidirect links a -> b and b -> a.
func (g *Graph) LinkBidirect(a, b int) error {
	if err := g.LinkUnidirect(a, b); err != nil {
		return err
	}
	return g.LinkUnidirect(b, a)
}

// Unlink removes the link a -> b. Reports whether a link was removed.
func (g *Graph) Unlink(a, b int) bool {
	if a < 0 || a >= len(g.vertices) {
		return false
	}
	n := len(g.vertices[a].Neighbors)
	g.vertices[a].Neighbors = slices.DeleteFunc(g.vertices[a].Neighbors, func(x int) bool { return x == b })
	return len(g.vertices[a].Neighbors) != n
}

// Validate checks the adjacency invariants: every neighbor index is in range
// and no vertex lists itself. The first violation is returned.
func (g *Graph) Validate() error {
	for i, v := range g.vertices {
		for _, n := range v.Neighbors {
			if n == i {
				return cyclicReference(i)
			}
			if n < 0 || n >= len(g.vertices) {
				return invalidIndex(n)
			}
		}
	}
	return nil
}

func shiftUp(neighbors []int, from int) {
	for j, n := range neighbors {
		if n >= from {
			neighbors[j] = n + 1
		}
	}
}

func dropAndShiftDown(neighbors []int, removed int) []int {
	out := neighbors[:0]
	for _, n := range neighbors {
		switch {
		case n == removed:
			continue
		case n > removed:
			out = append(out, n-1)
		default:
			out = append(out, n)
		}
	}
	return out
}
