package navgraph

// DefaultMaxExpansions is the expansion budget of SearchBounded.
const DefaultMaxExpansions = 1000

// DefaultBatchConcurrency bounds SearchBatch when WithConcurrency is not given.
const DefaultBatchConcurrency = 8

// SearchOptions tunes a search call.
type SearchOptions struct {
	// MaxExpansions caps the number of frontier pops of SearchBounded.
	MaxExpansions int
	// Concurrency caps parallel queries in SearchBatch.
	Concurrency int
	// Algorithm selects the engine used by Find and SearchBatch.
	Algorithm Algorithm
}

// SearchOption represents a functional option for configuring a search.
type SearchOption func(*SearchOptions)

// Algorithm names a search engine.
type Algorithm string

const (
	// AlgorithmAStar is the canonical heap-based A* (Graph.Search).
	AlgorithmAStar Algorithm = "astar"
	// AlgorithmBounded is the budgeted prefix search (Graph.SearchBounded).
	AlgorithmBounded Algorithm = "bounded"
)

// DefaultSearchOptions returns the options used when none are given.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		MaxExpansions: DefaultMaxExpansions,
		Concurrency:   DefaultBatchConcurrency,
		Algorithm:     AlgorithmAStar,
	}
}

// WithMaxExpansions sets the expansion budget. Values < 1 are ignored.
func WithMaxExpansions(n int) SearchOption {
	return func(o *SearchOptions) {
		if n > 0 {
			o.MaxExpansions = n
		}
	}
}

// WithConcurrency sets the batch worker limit. Values < 1 are ignored.
func WithConcurrency(n int) SearchOption {
	return func(o *SearchOptions) {
		if n > 0 {
			o.Concurrency = n
		}
	}
}

// WithAlgorithm picks the engine for Find and SearchBatch. Unknown names fall back to A*.
func WithAlgorithm(a Algorithm) SearchOption {
	return func(o *SearchOptions) {
		if a == AlgorithmBounded {
			o.Algorithm = AlgorithmBounded
			return
		}
		o.Algorithm = AlgorithmAStar
	}
}

func buildSearchOptions(opts []SearchOption) SearchOptions {
	cfg := DefaultSearchOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Find runs the engine selected by WithAlgorithm, A* by default.
func (g *Graph) Find(from, to int, opts ...SearchOption) (Path, error) {
	if buildSearchOptions(opts).Algorithm == AlgorithmBounded {
		return g.SearchBounded(from, to, opts...)
	}
	return g.Search(from, to)
}
