package navgraph

import (
	"math"
	"sync"
)

type vertexState uint8

const (
	nonVisited vertexState = iota
	open
	closed
)

// scratch is the per-search bookkeeping of Search, kept apart from the
// vertices so searches never write to the graph.
type scratch struct {
	state  []vertexState
	g      []float64
	f      []float64
	parent []int
}

var scratchPool = sync.Pool{
	New: func() any { return new(scratch) },
}

// acquireScratch returns scratch sized for n vertices with every entry reset.
func acquireScratch(n int) *scratch {
	s := scratchPool.Get().(*scratch)
	if cap(s.state) < n {
		s.state = make([]vertexState, n)
		s.g = make([]float64, n)
		s.f = make([]float64, n)
		s.parent = make([]int, n)
	}
	s.state = s.state[:n]
	s.g = s.g[:n]
	s.f = s.f[:n]
	s.parent = s.parent[:n]

	for i := 0; i < n; i++ {
		s.state[i] = nonVisited
		s.g[i] = math.Inf(1)
		s.f[i] = math.Inf(1)
		s.parent[i] = -1
	}
	return s
}

func releaseScratch(s *scratch) {
	scratchPool.Put(s)
}
