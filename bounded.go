package navgraph

import (
	"container/heap"

	"github.com/RoaringBitmap/roaring/v2"
)

// partialPath is a candidate route: the vertices from the start to the
// current frontier vertex plus its A* scores.
type partialPath struct {
	vertices []int
	g        float64
	f        float64
	seq      int
}

func (p *partialPath) terminal() int { return p.vertices[len(p.vertices)-1] }

// remaining is the heuristic part of f.
func (p *partialPath) remaining() float64 { return p.f - p.g }

// better reports whether p ranks ahead of other: lower f first, then the one
// closer to the goal.
func (p *partialPath) better(other *partialPath) bool {
	if p.f != other.f {
		return p.f < other.f
	}
	return p.remaining() < other.remaining()
}

// extend returns a copy of p with vertex v appended and the new scores.
func (p *partialPath) extend(v int, g, f float64) *partialPath {
	vertices := make([]int, len(p.vertices)+1)
	copy(vertices, p.vertices)
	vertices[len(p.vertices)] = v
	return &partialPath{vertices: vertices, g: g, f: f}
}

// prefixQueue pops the best partial path first. Exact ties go to the earliest push.
type prefixQueue struct {
	items []*partialPath
	next  int
}

func (pq *prefixQueue) Len() int { return len(pq.items) }

func (pq *prefixQueue) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.better(b) {
		return true
	}
	if b.better(a) {
		return false
	}
	return a.seq < b.seq
}

func (pq *prefixQueue) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *prefixQueue) Push(x any) {
	p := x.(*partialPath)
	p.seq = pq.next
	pq.next++
	pq.items = append(pq.items, p)
}

func (pq *prefixQueue) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]
	return item
}

// SearchBounded builds a path with a budgeted best-first search over path
// prefixes. Every vertex is expanded at most once across the whole search,
// so the result is not guaranteed to be the cheapest route, but the work is
// capped by WithMaxExpansions (DefaultMaxExpansions when unset) regardless
// of graph size.
//
// The search keeps no state in the graph and may run concurrently with other
// searches on the same unmodified graph.
//
// The result is Full when the goal was reached within the budget, otherwise
// Partial along the best candidate seen. Errors match Search.
func (g *Graph) SearchBounded(from, to int, opts ...SearchOption) (Path, error) {
	cfg := buildSearchOptions(opts)

	best, expansions, err := g.bounded(from, to, cfg.MaxExpansions)
	if err != nil {
		g.logger.Debug("search failed", "algorithm", AlgorithmBounded, "from", from, "to", to, "error", err)
		return Path{}, err
	}

	path := Path{
		Kind:      Partial,
		Indices:   best.vertices,
		Positions: g.positionsOf(make([]Vec3, 0, len(best.vertices)), best.vertices),
		Cost:      best.g,
	}
	if best.terminal() == to {
		path.Kind = Full
	}

	g.logger.Debug("search completed",
		"algorithm", AlgorithmBounded,
		"from", from,
		"to", to,
		"kind", path.Kind,
		"expanded", expansions,
		"budget", cfg.MaxExpansions,
		"waypoints", path.Len(),
	)
	return path, nil
}

func (g *Graph) bounded(from, to, budget int) (*partialPath, int, error) {
	n := len(g.vertices)
	if n == 0 {
		return nil, 0, ErrEmptyGraph
	}
	if to < 0 || to >= n {
		return nil, 0, invalidIndex(to)
	}
	if from < 0 || from >= n {
		return nil, 0, invalidIndex(from)
	}

	goal := g.vertices[to].Position
	visited := roaring.New()

	queue := &prefixQueue{}
	heap.Push(queue, &partialPath{
		vertices: []int{from},
		g:        0,
		f:        heuristic(g.vertices[from].Position, goal),
	})

	var best *partialPath
	expansions := 0
	for expansions < budget && queue.Len() > 0 {
		current := heap.Pop(queue).(*partialPath)
		last := current.terminal()
		if visited.Contains(uint32(last)) {
			continue
		}
		expansions++

		if last == to {
			best = current
			break
		}
		if best == nil || current.better(best) {
			best = current
		}

		lastPos := g.vertices[last].Position
		for _, nb := range g.vertices[last].Neighbors {
			if nb == last {
				return nil, expansions, cyclicReference(last)
			}
			if nb < 0 || nb >= n {
				return nil, expansions, invalidIndex(nb)
			}
			if visited.Contains(uint32(nb)) {
				continue
			}

			neighbor := &g.vertices[nb]
			nbG := current.g + lastPos.DistanceSquared(neighbor.Position)*penaltyOf(neighbor)
			heap.Push(queue, current.extend(nb, nbG, nbG+heuristic(neighbor.Position, goal)))
		}

		visited.Add(uint32(last))
	}

	return best, expansions, nil
}
