package navgraph

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one from/to pair of a batch.
type Query struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Result pairs a query with its outcome. Err holds per-query failures such as
// an invalid index; they do not abort the batch.
type Result struct {
	Query Query
	Path  Path
	Err   error
}

// SearchBatch runs queries concurrently against g and returns results in
// query order. The graph must not be mutated while the batch runs.
//
// Only context cancellation aborts the batch; it is returned as the error and
// unfinished results are left zero.
func (g *Graph) SearchBatch(ctx context.Context, queries []Query, opts ...SearchOption) ([]Result, error) {
	cfg := buildSearchOptions(opts)
	results := make([]Result, len(queries))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Concurrency)

	for i, q := range queries {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			path, err := g.Find(q.From, q.To, opts...)
			results[i] = Result{Query: q, Path: path, Err: err}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, err
	}
	g.logger.Debug("batch completed", "queries", len(queries), "algorithm", cfg.Algorithm)
	return results, nil
}
