package navgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGraph is returned by every search on a graph with no vertices.
	ErrEmptyGraph = errors.New("navgraph: graph is empty")

	// ErrInvalidIndex indicates an out-of-bounds vertex index, either passed by
	// the caller or found in an adjacency list. Match it with errors.Is; the
	// concrete error is *InvalidIndexError.
	ErrInvalidIndex = errors.New("navgraph: invalid vertex index")

	// ErrCyclicReference indicates a vertex that lists itself as a neighbor.
	// The concrete error is *CyclicReferenceError.
	ErrCyclicReference = errors.New("navgraph: vertex references itself")
)

// InvalidIndexError reports the offending index.
type InvalidIndexError struct {
	Index int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("navgraph: invalid vertex index %d", e.Index)
}

// Is lets errors.Is(err, ErrInvalidIndex) match.
func (e *InvalidIndexError) Is(target error) bool { return target == ErrInvalidIndex }

// CyclicReferenceError reports the vertex found in its own adjacency list.
type CyclicReferenceError struct {
	Index int
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("navgraph: cyclic reference found at vertex %d", e.Index)
}

// Is lets errors.Is(err, ErrCyclicReference) match.
func (e *CyclicReferenceError) Is(target error) bool { return target == ErrCyclicReference }

func invalidIndex(i int) error { return &InvalidIndexError{Index: i} }

func cyclicReference(i int) error { return &CyclicReferenceError{Index: i} }
