package navgraph

import (
	"container/heap"
)

// openNode is a frontier entry of Search.
type openNode struct {
	vertex int
	f      float64
	index  int // Index in the heap
}

// openQueue implements heap.Interface ordered by f, then by vertex index so
// equal scores resolve the same way on every run.
type openQueue []*openNode

func (pq openQueue) Len() int { return len(pq) }

func (pq openQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].vertex < pq[j].vertex
}

func (pq openQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *openQueue) Push(x any) {
	node := x.(*openNode)
	node.index = len(*pq)
	*pq = append(*pq, node)
}

func (pq *openQueue) Pop() any {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*pq = old[0 : n-1]
	return node
}

// Search builds a path from vertex from to vertex to using A* with a binary
// heap frontier.
//
// Edge cost is the squared distance between the two vertices scaled by the
// target's Penalty; the heuristic is the squared distance to the goal. When
// the goal is unreachable the result is Partial and leads to the visited
// vertex with the lowest f-score.
//
// Errors: ErrEmptyGraph; *InvalidIndexError for a bad from/to or a dangling
// link met during expansion; *CyclicReferenceError for a reachable vertex
// that lists itself.
func (g *Graph) Search(from, to int) (Path, error) {
	res, err := g.astar(from, to)
	if err != nil {
		g.logger.Debug("search failed", "algorithm", AlgorithmAStar, "from", from, "to", to, "error", err)
		return Path{}, err
	}

	path := Path{
		Kind:      res.kind,
		Indices:   res.indices,
		Positions: g.positionsOf(make([]Vec3, 0, len(res.indices)), res.indices),
		Cost:      res.cost,
	}
	g.logger.Debug("search completed",
		"algorithm", AlgorithmAStar,
		"from", from,
		"to", to,
		"kind", path.Kind,
		"expanded", res.expanded,
		"waypoints", path.Len(),
	)
	return path, nil
}

// AppendPath runs Search and appends the waypoint positions to dst, start
// first. dst may be reused across calls to avoid allocations.
func (g *Graph) AppendPath(dst []Vec3, from, to int) ([]Vec3, PathKind, error) {
	res, err := g.astar(from, to)
	if err != nil {
		return dst, Partial, err
	}
	return g.positionsOf(dst, res.indices), res.kind, nil
}

type searchResult struct {
	kind     PathKind
	indices  []int
	cost     float64
	expanded int
}

func (g *Graph) astar(from, to int) (searchResult, error) {
	n := len(g.vertices)
	if n == 0 {
		return searchResult{}, ErrEmptyGraph
	}
	if to < 0 || to >= n {
		return searchResult{}, invalidIndex(to)
	}
	if from < 0 || from >= n {
		return searchResult{}, invalidIndex(from)
	}

	s := acquireScratch(n)
	defer releaseScratch(s)

	goal := g.vertices[to].Position

	openSet := &openQueue{}
	heap.Init(openSet)
	inQueue := make(map[int]*openNode)

	s.state[from] = open
	s.g[from] = 0
	s.f[from] = heuristic(g.vertices[from].Position, goal)
	startNode := &openNode{vertex: from, f: s.f[from]}
	heap.Push(openSet, startNode)
	inQueue[from] = startNode

	expanded := 0
	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*openNode).vertex
		delete(inQueue, current)
		expanded++

		if current == to {
			return searchResult{
				kind:     Full,
				indices:  reconstructParents(s.parent, current),
				cost:     s.g[current],
				expanded: expanded,
			}, nil
		}

		s.state[current] = closed

		// Copy what we need from the current vertex before touching any neighbor.
		currentPos := g.vertices[current].Position
		currentG := s.g[current]

		for _, nb := range g.vertices[current].Neighbors {
			if nb == current {
				return searchResult{}, cyclicReference(current)
			}
			if nb < 0 || nb >= n {
				return searchResult{}, invalidIndex(nb)
			}

			neighbor := &g.vertices[nb]
			tentativeG := currentG + currentPos.DistanceSquared(neighbor.Position)*penaltyOf(neighbor)
			// A NaN cost never counts as an improvement.
			if !(tentativeG < s.g[nb]) {
				continue
			}

			// Found a better path to this neighbor
			s.parent[nb] = current
			s.g[nb] = tentativeG
			s.f[nb] = tentativeG + heuristic(neighbor.Position, goal)
			s.state[nb] = open

			if node, ok := inQueue[nb]; ok {
				node.f = s.f[nb]
				heap.Fix(openSet, node.index)
			} else {
				node = &openNode{vertex: nb, f: s.f[nb]}
				heap.Push(openSet, node)
				inQueue[nb] = node
			}
		}
	}

	// No direct path found. Use the vertex with the least f-score as the end
	// of a partial path.
	closest := -1
	for i := 0; i < n; i++ {
		if s.state[i] != nonVisited && (closest < 0 || s.f[i] < s.f[closest]) {
			closest = i
		}
	}

	return searchResult{
		kind:     Partial,
		indices:  reconstructParents(s.parent, closest),
		cost:     s.g[closest],
		expanded: expanded,
	}, nil
}

// penaltyOf treats negative and NaN penalties as free travel so costs never decrease.
func penaltyOf(v *Vertex) float64 {
	if v.Penalty > 0 {
		return v.Penalty
	}
	return 0
}
