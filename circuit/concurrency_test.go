// Package circuit_test verifies that synthesis is safe for concurrent
// callers: kernels are immutable shared constants and all per-call state is
// local, so independent (n, kind) requests need no coordination.
package circuit_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qwavelet/circuit"
)

// TestConcurrentSynthesize runs many synthesis calls in parallel and checks
// every result against a sequentially-computed baseline.
func TestConcurrentSynthesize(t *testing.T) {
	baseline, err := circuit.Synthesize(8, circuit.Haar)
	require.NoError(t, err)

	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)

	results := make([]*circuit.Circuit, workers)
	for w := 0; w < workers; w++ {
		go func(idx int) {
			defer wg.Done()
			c, synthErr := circuit.Synthesize(8, circuit.Haar)
			require.NoError(t, synthErr)
			results[idx] = c
		}(w)
	}
	wg.Wait()

	for w, c := range results {
		require.Equal(t, baseline, c, "worker %d", w)
	}
}

// TestConcurrentMixedKinds interleaves transforms and register sizes to make
// sure no hidden state leaks across calls.
func TestConcurrentMixedKinds(t *testing.T) {
	type request struct {
		n    int
		kind circuit.Transform
	}
	reqs := []request{
		{1, circuit.Haar}, {5, circuit.Haar}, {9, circuit.Haar},
		{2, circuit.DaubechiesD4}, {6, circuit.DaubechiesD4}, {10, circuit.DaubechiesD4},
	}

	var wg sync.WaitGroup
	const rounds = 20
	wg.Add(rounds * len(reqs))

	for r := 0; r < rounds; r++ {
		for _, rq := range reqs {
			go func(n int, kind circuit.Transform) {
				defer wg.Done()
				c, err := circuit.Synthesize(n, kind)
				require.NoError(t, err)

				rep, err := c.Report()
				require.NoError(t, err)
				analytic, err := circuit.ComputeReport(n, kind)
				require.NoError(t, err)
				require.Equal(t, analytic, rep)
			}(rq.n, rq.kind)
		}
	}
	wg.Wait()
}
