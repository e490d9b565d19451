package circuit

import "fmt"

// Report summarizes the resources of one wavelet circuit.
type Report struct {
	// ExchangeCount is the number of elementary exchange gates.
	ExchangeCount int
	// KernelCount is the number of local kernel applications
	// (per-qubit Hadamards for Haar, 4×4 placements for D4).
	KernelCount int
	// Depth is the longest chain of operations that must execute in strict
	// sequence.
	Depth int
}

// ComputeReport returns the closed-form resource report for (n, kind)
// without synthesizing a circuit.
//
// Closed forms (scales s = n .. minimum width):
//
//	Haar: kernels  Σ_{s=1..n} s    = n(n+1)/2
//	      exchanges Σ_{s=1..n}(s-1) = n(n-1)/2
//	      depth    3n-3 for n ≥ 2, 1 for n = 1
//	D4:   kernels  Σ_{s=2..n}(s-1) = n(n-1)/2
//	      exchanges same             = n(n-1)/2
//	      depth    4n-6
//
// Returns the same validation errors as Synthesize. Complexity: O(1).
//
// The analytic figures must equal a replay-derived Circuit.Report for every
// valid input; the equality is enforced by tests, not assumed here.
func ComputeReport(n int, kind Transform) (Report, error) {
	switch kind {
	case Haar:
		if n < kind.MinSize() {
			return Report{}, fmt.Errorf("ComputeReport(%d, %s): %w", n, kind, ErrRegisterTooSmall)
		}
		depth := 3*n - 3
		if n == 1 {
			depth = 1
		}

		return Report{
			ExchangeCount: n * (n - 1) / 2,
			KernelCount:   n * (n + 1) / 2,
			Depth:         depth,
		}, nil
	case DaubechiesD4:
		if n < kind.MinSize() {
			return Report{}, fmt.Errorf("ComputeReport(%d, %s): %w", n, kind, ErrRegisterTooSmall)
		}

		return Report{
			ExchangeCount: n * (n - 1) / 2,
			KernelCount:   n * (n - 1) / 2,
			Depth:         4*n - 6,
		}, nil
	default:
		return Report{}, fmt.Errorf("ComputeReport(%d, kind=%d): %w", n, kind, ErrUnknownTransform)
	}
}

// Report derives the resource summary by replaying the circuit: counting
// operations per tag and scheduling depth greedily per position (an
// operation starts one level above the busiest position it touches).
//
// Complexity: O(len(Ops)).
func (c *Circuit) Report() (Report, error) {
	if c == nil {
		return Report{}, fmt.Errorf("Report: %w", ErrNilCircuit)
	}

	var rep Report
	level := make([]int, c.Size)

	var l int
	for i, op := range c.Ops {
		switch op.Type {
		case ExchangeOp:
			rep.ExchangeCount++
		case KernelOp:
			rep.KernelCount++
		default:
			return Report{}, fmt.Errorf("Report: op %d has tag %d: %w", i, op.Type, ErrUnknownOperation)
		}

		l = 0
		for _, p := range op.Positions {
			l = max(l, level[p])
		}
		l++
		for _, p := range op.Positions {
			level[p] = l
		}
		rep.Depth = max(rep.Depth, l)
	}

	return rep, nil
}
