package circuit

import (
	"errors"

	"github.com/katalvlaran/qwavelet/kernel"
)

var (
	// ErrRegisterTooSmall is returned when n is below the transform's
	// minimum register size (1 for Haar, 2 for DaubechiesD4).
	// Usage: if errors.Is(err, circuit.ErrRegisterTooSmall) { /* fix n */ }.
	ErrRegisterTooSmall = errors.New("circuit: register below transform minimum")

	// ErrUnknownTransform is returned for Transform values outside the
	// supported set. Usage: if errors.Is(err, circuit.ErrUnknownTransform).
	ErrUnknownTransform = errors.New("circuit: unknown transform kind")

	// ErrNilCircuit is returned when a nil *Circuit is passed to Compose,
	// VerifyCompose or Circuit.Report.
	ErrNilCircuit = errors.New("circuit: circuit is nil")

	// ErrUnknownOperation signals a malformed operation tag inside a
	// circuit; it cannot occur for circuits produced by Synthesize.
	ErrUnknownOperation = errors.New("circuit: unknown operation type")

	// ErrVerificationMismatch is the diagnostic outcome of VerifyCompose
	// when the composed matrix deviates from the product-formula reference
	// beyond Tolerance. Never produced by production synthesis.
	ErrVerificationMismatch = errors.New("circuit: composed matrix deviates from reference")
)

// Transform selects the wavelet family to synthesize.
type Transform uint8

const (
	// Haar is the quantum Haar wavelet transform; defined for n ≥ 1.
	Haar Transform = iota
	// DaubechiesD4 is the quantum Daubechies D4 transform; defined for n ≥ 2.
	DaubechiesD4
)

// String returns the canonical transform name.
func (tr Transform) String() string {
	switch tr {
	case Haar:
		return "Haar"
	case DaubechiesD4:
		return "DaubechiesD4"
	default:
		return "Unknown"
	}
}

// MinSize returns the smallest register the transform is defined for.
func (tr Transform) MinSize() int {
	if tr == DaubechiesD4 {
		return 2
	}

	return 1
}

// minWidth returns the smallest active sub-register width of the scale loop.
// It coincides with MinSize for both supported transforms.
func (tr Transform) minWidth() int { return tr.MinSize() }

// OpType tags the variant held by an Operation.
type OpType uint8

const (
	// ExchangeOp swaps the contents of the two positions in Positions.
	ExchangeOp OpType = iota
	// KernelOp applies the kernel named by Kernel to Positions.
	KernelOp
)

// Operation is one element of a circuit: either an elementary exchange or a
// local kernel application. The Positions list is ordered; for KernelOp its
// length equals Kernel.Arity().
type Operation struct {
	Type      OpType
	Positions []int
	// Kernel is meaningful only when Type == KernelOp.
	Kernel kernel.ID
}

// Circuit is the full synthesis artifact: the ordered operation sequence for
// one (register size, transform) pair. Order defines left-to-right execution;
// operations do not commute in general. A Circuit is immutable after
// synthesis; callers must not mutate Ops.
type Circuit struct {
	// Size is the register width n.
	Size int
	// Transform is the wavelet family realized by Ops.
	Transform Transform
	// Ops is the ordered operation sequence.
	Ops []Operation
}
