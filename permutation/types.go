package permutation

import "errors"

var (
	// ErrInvalidRegisterSize is returned when the register size n is smaller
	// than 1. Usage: if errors.Is(err, permutation.ErrInvalidRegisterSize).
	ErrInvalidRegisterSize = errors.New("permutation: register size must be at least 1")

	// ErrUnsupportedPermutation is returned for Kind values outside the three
	// named variants. Usage: if errors.Is(err, permutation.ErrUnsupportedPermutation).
	ErrUnsupportedPermutation = errors.New("permutation: unsupported permutation kind")

	// ErrStateSize is returned by Network.Apply when the supplied state slice
	// does not match the network's register size.
	ErrStateSize = errors.New("permutation: state length does not match register size")
)

// Kind identifies one of the named register permutations.
type Kind uint8

const (
	// PerfectShuffle is the cyclic left rotation Π of position labels.
	PerfectShuffle Kind = iota
	// BitReversal maps position i to position n-1-i.
	BitReversal
	// DownShift is the cyclic right rotation Q, the inverse of PerfectShuffle.
	DownShift
)

// String returns the canonical name of the permutation kind.
func (k Kind) String() string {
	switch k {
	case PerfectShuffle:
		return "PerfectShuffle"
	case BitReversal:
		return "BitReversal"
	case DownShift:
		return "DownShift"
	default:
		return "Unknown"
	}
}

// Exchange is an atomic data-movement operation swapping the contents of
// exactly two register positions A and B (A < B). Shuffle networks emit only
// nearest-neighbor exchanges (B == A+1); bit-reversal pairs (i, n-1-i).
type Exchange struct {
	A int // lower position index
	B int // higher position index
}

// Network is the synthesized realization of one permutation: the ordered
// exchange sequence whose composed effect equals the target mapping.
// A Network is immutable after synthesis; callers must not mutate Exchanges.
type Network struct {
	// Size is the register width n the network acts on.
	Size int
	// Kind is the permutation variant this network realizes.
	Kind Kind
	// Exchanges is the ordered realization; order is semantically significant.
	Exchanges []Exchange
}
