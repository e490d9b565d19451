package permutation

import "fmt"

// Synthesize produces the exchange network realizing the permutation kind
// over n register positions.
//
// Returns:
//
//   - *Network with the ordered exchange sequence; exactly n-1 exchanges for
//     PerfectShuffle and DownShift, ⌊n/2⌋ for BitReversal.
//   - ErrInvalidRegisterSize if n < 1.
//   - ErrUnsupportedPermutation for unrecognized kinds.
//
// Complexity: O(n) time and space.
func Synthesize(n int, kind Kind) (*Network, error) {
	// 1. Validate register size before touching any state.
	if n < 1 {
		return nil, fmt.Errorf("Synthesize(%d, %s): %w", n, kind, ErrInvalidRegisterSize)
	}

	// 2. Emit the variant's exchange sequence.
	var seq []Exchange
	switch kind {
	case PerfectShuffle:
		// Walk the content of position 0 down to position n-1; every other
		// position shifts one slot toward 0. Serial dependency chain.
		seq = make([]Exchange, 0, n-1)
		for i := 0; i < n-1; i++ {
			seq = append(seq, Exchange{A: i, B: i + 1})
		}
	case DownShift:
		// Exact inverse of PerfectShuffle: the same exchanges in reverse
		// order (each exchange is self-inverse).
		seq = make([]Exchange, 0, n-1)
		for i := n - 2; i >= 0; i-- {
			seq = append(seq, Exchange{A: i, B: i + 1})
		}
	case BitReversal:
		// Disjoint pairs (i, n-1-i); the middle position stays fixed for odd n.
		seq = make([]Exchange, 0, n/2)
		for i := 0; i < n-1-i; i++ {
			seq = append(seq, Exchange{A: i, B: n - 1 - i})
		}
	default:
		return nil, fmt.Errorf("Synthesize(%d, kind=%d): %w", n, kind, ErrUnsupportedPermutation)
	}

	return &Network{Size: n, Kind: kind, Exchanges: seq}, nil
}

// TargetMapping returns the permutation's defining mapping array:
// mapping[i] is the source position whose content lands at position i.
//
//	PerfectShuffle: mapping[i] = (i+1) mod n
//	BitReversal:    mapping[i] = n-1-i
//	DownShift:      mapping[i] = (i-1+n) mod n
//
// Returns the same sentinel errors as Synthesize. Complexity: O(n).
func TargetMapping(n int, kind Kind) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("TargetMapping(%d, %s): %w", n, kind, ErrInvalidRegisterSize)
	}

	m := make([]int, n)
	switch kind {
	case PerfectShuffle:
		for i := range m {
			m[i] = (i + 1) % n
		}
	case BitReversal:
		for i := range m {
			m[i] = n - 1 - i
		}
	case DownShift:
		for i := range m {
			m[i] = (i - 1 + n) % n
		}
	default:
		return nil, fmt.Errorf("TargetMapping(%d, kind=%d): %w", n, kind, ErrUnsupportedPermutation)
	}

	return m, nil
}

// Apply replays the exchange sequence against state in place, where state[i]
// holds the content currently at position i.
//
// Returns ErrStateSize if len(state) != Size. Complexity: O(n).
func (nw *Network) Apply(state []int) error {
	if len(state) != nw.Size {
		return fmt.Errorf("Apply: have %d positions, want %d: %w", len(state), nw.Size, ErrStateSize)
	}

	var e Exchange
	for _, e = range nw.Exchanges {
		state[e.A], state[e.B] = state[e.B], state[e.A]
	}

	return nil
}

// Mapping replays the network against the identity array and returns the
// resulting mapping: mapping[i] is the original position of the content that
// ends at position i. For a correct network this equals TargetMapping.
//
// Complexity: O(n).
func (nw *Network) Mapping() []int {
	id := make([]int, nw.Size)
	for i := range id {
		id[i] = i
	}
	// Identity replay cannot fail on size.
	_ = nw.Apply(id)

	return id
}

// Depth returns the length of the longest chain of exchanges that must
// execute in strict sequence, computed by greedy per-position scheduling.
//
// Complexity: O(n).
func (nw *Network) Depth() int {
	level := make([]int, nw.Size)
	depth := 0

	var e Exchange
	var l int
	for _, e = range nw.Exchanges {
		l = 1 + max(level[e.A], level[e.B])
		level[e.A], level[e.B] = l, l
		if l > depth {
			depth = l
		}
	}

	return depth
}
