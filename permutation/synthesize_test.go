package permutation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qwavelet/bitindex"
	"github.com/katalvlaran/qwavelet/permutation"
)

var allKinds = []permutation.Kind{
	permutation.PerfectShuffle,
	permutation.BitReversal,
	permutation.DownShift,
}

func TestSynthesize_Validation(t *testing.T) {
	_, err := permutation.Synthesize(0, permutation.PerfectShuffle)
	assert.ErrorIs(t, err, permutation.ErrInvalidRegisterSize)

	_, err = permutation.Synthesize(-3, permutation.BitReversal)
	assert.ErrorIs(t, err, permutation.ErrInvalidRegisterSize)

	_, err = permutation.Synthesize(4, permutation.Kind(99))
	assert.ErrorIs(t, err, permutation.ErrUnsupportedPermutation)

	_, err = permutation.TargetMapping(0, permutation.DownShift)
	assert.ErrorIs(t, err, permutation.ErrInvalidRegisterSize)

	_, err = permutation.TargetMapping(4, permutation.Kind(99))
	assert.ErrorIs(t, err, permutation.ErrUnsupportedPermutation)
}

func TestSynthesize_ExchangeCounts(t *testing.T) {
	for n := 1; n <= 10; n++ {
		for _, kind := range allKinds {
			nw, err := permutation.Synthesize(n, kind)
			require.NoError(t, err)

			want := n - 1 // shuffle and down-shift
			if kind == permutation.BitReversal {
				want = n / 2
			}
			assert.Len(t, nw.Exchanges, want, "n=%d kind=%s", n, kind)
		}
	}
}

func TestSynthesize_PerfectShuffleSequence(t *testing.T) {
	nw, err := permutation.Synthesize(4, permutation.PerfectShuffle)
	require.NoError(t, err)
	assert.Equal(t, []permutation.Exchange{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}}, nw.Exchanges)
}

func TestSynthesize_DownShiftIsReversedShuffle(t *testing.T) {
	shuffle, err := permutation.Synthesize(6, permutation.PerfectShuffle)
	require.NoError(t, err)
	down, err := permutation.Synthesize(6, permutation.DownShift)
	require.NoError(t, err)

	require.Len(t, down.Exchanges, len(shuffle.Exchanges))
	for i, e := range down.Exchanges {
		assert.Equal(t, shuffle.Exchanges[len(shuffle.Exchanges)-1-i], e)
	}
}

// TestMapping_MatchesTarget is the package post-condition: replaying every
// synthesized network against the identity array must reproduce the
// permutation's defined mapping exactly.
func TestMapping_MatchesTarget(t *testing.T) {
	for n := 1; n <= 10; n++ {
		for _, kind := range allKinds {
			nw, err := permutation.Synthesize(n, kind)
			require.NoError(t, err)

			want, err := permutation.TargetMapping(n, kind)
			require.NoError(t, err)

			require.Equal(t, want, nw.Mapping(), "n=%d kind=%s", n, kind)
		}
	}
}

// TestRoundTrip_ShuffleThenDownShift checks that Π followed by Q restores any
// register ordering.
func TestRoundTrip_ShuffleThenDownShift(t *testing.T) {
	const n = 7
	shuffle, err := permutation.Synthesize(n, permutation.PerfectShuffle)
	require.NoError(t, err)
	down, err := permutation.Synthesize(n, permutation.DownShift)
	require.NoError(t, err)

	state := []int{3, 1, 4, 1, 5, 9, 2}
	orig := append([]int(nil), state...)

	require.NoError(t, shuffle.Apply(state))
	require.NoError(t, down.Apply(state))
	assert.Equal(t, orig, state)
}

func TestApply_StateSizeMismatch(t *testing.T) {
	nw, err := permutation.Synthesize(3, permutation.BitReversal)
	require.NoError(t, err)

	err = nw.Apply(make([]int, 5))
	assert.ErrorIs(t, err, permutation.ErrStateSize)
}

// TestIndexAction cross-validates the position-level mapping against the
// bitindex ground truth: with positions numbering bits most-significant
// first, Π acts on indices as RotateLeft, Q as RotateRight, P as Reverse.
func TestIndexAction(t *testing.T) {
	groundTruth := map[permutation.Kind]func(x, n int) (int, error){
		permutation.PerfectShuffle: bitindex.RotateLeft,
		permutation.DownShift:      bitindex.RotateRight,
		permutation.BitReversal:    bitindex.Reverse,
	}

	for n := 1; n <= 8; n++ {
		for _, kind := range allKinds {
			nw, err := permutation.Synthesize(n, kind)
			require.NoError(t, err)
			mapping := nw.Mapping()

			for x := 0; x < 1<<n; x++ {
				// Index action derived from the mapping: output bit i is
				// input bit mapping[i].
				y := 0
				for i := 0; i < n; i++ {
					y = (y << 1) | ((x >> (n - 1 - mapping[i])) & 1)
				}

				want, err := groundTruth[kind](x, n)
				require.NoError(t, err)
				require.Equal(t, want, y, "n=%d kind=%s x=%d", n, kind, x)
			}
		}
	}
}

func TestDepth(t *testing.T) {
	for n := 2; n <= 10; n++ {
		shuffle, err := permutation.Synthesize(n, permutation.PerfectShuffle)
		require.NoError(t, err)
		// Serial dependency chain: depth equals the exchange count.
		assert.Equal(t, n-1, shuffle.Depth(), "shuffle n=%d", n)

		rev, err := permutation.Synthesize(n, permutation.BitReversal)
		require.NoError(t, err)
		// All pairs disjoint.
		assert.Equal(t, 1, rev.Depth(), "bit-reversal n=%d", n)
	}

	single, err := permutation.Synthesize(1, permutation.PerfectShuffle)
	require.NoError(t, err)
	assert.Zero(t, single.Depth())
}

func TestSynthesize_Deterministic(t *testing.T) {
	for _, kind := range allKinds {
		a, err := permutation.Synthesize(9, kind)
		require.NoError(t, err)
		b, err := permutation.Synthesize(9, kind)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}
