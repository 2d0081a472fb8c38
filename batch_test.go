package navgraph_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaastrichtU-BISS/navgraph"
)

func randomQueries(rng *rand.Rand, n, vertices int) []navgraph.Query {
	queries := make([]navgraph.Query, n)
	for i := range queries {
		queries[i] = navgraph.Query{From: rng.IntN(vertices), To: rng.IntN(vertices)}
	}
	return queries
}

func TestSearchBatchMatchesSerial(t *testing.T) {
	g := gridGraph(t, 25, nil)
	queries := randomQueries(rand.New(rand.NewPCG(9, 9)), 200, g.Len())

	for _, algorithm := range []navgraph.Algorithm{navgraph.AlgorithmAStar, navgraph.AlgorithmBounded} {
		t.Run(string(algorithm), func(t *testing.T) {
			opts := []navgraph.SearchOption{navgraph.WithAlgorithm(algorithm), navgraph.WithConcurrency(4)}
			results, err := g.SearchBatch(context.Background(), queries, opts...)
			require.NoError(t, err)
			require.Len(t, results, len(queries))

			for i, r := range results {
				assert.Equal(t, queries[i], r.Query)
				require.NoError(t, r.Err)

				want, err := g.Find(r.Query.From, r.Query.To, opts...)
				require.NoError(t, err)
				assert.Equal(t, want, r.Path, "query %d", i)
			}
		})
	}
}

func TestSearchBatchPerQueryErrors(t *testing.T) {
	g := gridGraph(t, 5, nil)
	queries := []navgraph.Query{{From: 0, To: 24}, {From: 0, To: 99}, {From: 3, To: 3}}

	results, err := g.SearchBatch(context.Background(), queries)
	require.NoError(t, err)

	require.NoError(t, results[0].Err)
	assert.Equal(t, navgraph.Full, results[0].Path.Kind)
	require.ErrorIs(t, results[1].Err, navgraph.ErrInvalidIndex)
	require.NoError(t, results[2].Err)
}

func TestSearchBatchCancelled(t *testing.T) {
	g := gridGraph(t, 10, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.SearchBatch(ctx, randomQueries(rand.New(rand.NewPCG(1, 1)), 20, g.Len()))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSearchBatchEmpty(t *testing.T) {
	results, err := gridGraph(t, 2, nil).SearchBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
