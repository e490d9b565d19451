package circuit

import (
	"fmt"

	"github.com/katalvlaran/qwavelet/kernel"
	"github.com/katalvlaran/qwavelet/permutation"
)

// Synthesize produces the complete wavelet circuit for register size n and
// the given transform. This is the sole production entry point of the engine.
//
// Returns:
//
//   - *Circuit holding the ordered operation sequence.
//   - ErrRegisterTooSmall if n < kind.MinSize().
//   - ErrUnknownTransform for unsupported kinds.
//
// The result is deterministic: identical (n, kind) inputs yield identical
// operation sequences. No partial circuit is ever returned on error.
//
// Complexity: O(n²) time and emitted operations.
func Synthesize(n int, kind Transform) (*Circuit, error) {
	// 1. Fail fast on invalid inputs.
	if kind != Haar && kind != DaubechiesD4 {
		return nil, fmt.Errorf("Synthesize(%d, kind=%d): %w", n, kind, ErrUnknownTransform)
	}
	if n < kind.MinSize() {
		return nil, fmt.Errorf("Synthesize(%d, %s): need n ≥ %d: %w",
			n, kind, kind.MinSize(), ErrRegisterTooSmall)
	}

	// 2. Scale loop: active width s shrinks from n to the transform minimum;
	//    position s-1 freezes after each iteration.
	ops := make([]Operation, 0, opCount(n, kind))
	var err error
	for s := n; s >= kind.minWidth(); s-- {
		// 2a. Local mixing over the active sub-register.
		switch kind {
		case Haar:
			for q := 0; q < s; q++ {
				ops = append(ops, Operation{
					Type:      KernelOp,
					Positions: []int{q},
					Kernel:    kernel.HadamardID,
				})
			}
		case DaubechiesD4:
			// Overlapping adjacent pairs, applied in ascending order; the
			// order matters, the placements do not commute.
			for i := 0; i < s-1; i++ {
				ops = append(ops, Operation{
					Type:      KernelOp,
					Positions: []int{i, i + 1},
					Kernel:    kernel.D4ID,
				})
			}
		}

		// 2b. Perfect shuffle restricted to the active sub-register rotates
		//     the coarse coefficient into position s-1 before it freezes.
		var nw *permutation.Network
		if nw, err = permutation.Synthesize(s, permutation.PerfectShuffle); err != nil {
			// Unreachable: s ≥ 1 is guaranteed by the loop bounds.
			return nil, fmt.Errorf("Synthesize(%d, %s): shuffle at scale %d: %w", n, kind, s, err)
		}
		for _, e := range nw.Exchanges {
			ops = append(ops, Operation{Type: ExchangeOp, Positions: []int{e.A, e.B}})
		}
	}

	return &Circuit{Size: n, Transform: kind, Ops: ops}, nil
}

// opCount returns the exact number of operations Synthesize emits, used as a
// capacity hint. Kernel and exchange totals per transform are derived in
// resource.go.
func opCount(n int, kind Transform) int {
	if kind == Haar {
		return n*(n+1)/2 + n*(n-1)/2
	}

	return n * (n - 1) // D4: n(n-1)/2 kernels + n(n-1)/2 exchanges
}
