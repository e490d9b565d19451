package kernel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Tolerance bounds the allowed deviation of K·Kᵀ from the identity.
const Tolerance = 1e-9

var (
	// ErrNonUnitary signals that a kernel matrix deviates from unitarity by
	// more than Tolerance. For the built-in kernels this is a load-time
	// defect, not a runtime user error.
	ErrNonUnitary = errors.New("kernel: matrix is not unitary within tolerance")

	// ErrUnknownKernel is returned by ByID for unrecognized kernel ids.
	ErrUnknownKernel = errors.New("kernel: unknown kernel id")
)

// ID names a built-in kernel inside circuit operations.
type ID uint8

const (
	// HadamardID is the 2×2 Haar butterfly [[1,1],[1,-1]]/√2.
	HadamardID ID = iota
	// D4ID is the 4×4 Daubechies D4 block acting on two adjacent qubits.
	D4ID
)

// String returns the canonical kernel name.
func (id ID) String() string {
	switch id {
	case HadamardID:
		return "Hadamard"
	case D4ID:
		return "DaubechiesD4"
	default:
		return "Unknown"
	}
}

// Arity returns the number of register positions the kernel occupies:
// 1 for Hadamard, 2 for the D4 block.
func (id ID) Arity() int {
	if id == D4ID {
		return 2
	}

	return 1
}

var (
	hadamard *mat.Dense
	d4       *mat.Dense
)

func init() {
	s := 1 / math.Sqrt2
	hadamard = mat.NewDense(2, 2, []float64{
		s, s,
		s, -s,
	})

	// Daubechies D4 filter coefficients.
	h0 := (1 + math.Sqrt(3)) / (4 * math.Sqrt2)
	h1 := (3 + math.Sqrt(3)) / (4 * math.Sqrt2)
	h2 := (3 - math.Sqrt(3)) / (4 * math.Sqrt2)
	h3 := (1 - math.Sqrt(3)) / (4 * math.Sqrt2)

	// Periodic-wrap D4 analysis block: scaling rows interleaved with the
	// wavelet rows [h3,-h2,h1,-h0].
	d4 = mat.NewDense(4, 4, []float64{
		h0, h1, h2, h3,
		h3, -h2, h1, -h0,
		h2, h3, h0, h1,
		h1, -h0, h3, -h2,
	})

	// Transcription guard; unreachable in a correct build.
	for id, m := range map[ID]*mat.Dense{HadamardID: hadamard, D4ID: d4} {
		if err := Validate(m); err != nil {
			panic(fmt.Errorf("kernel: %s constants: %w", id, err))
		}
	}
}

// Hadamard returns the shared 2×2 Haar kernel. Read-only.
func Hadamard() *mat.Dense { return hadamard }

// D4 returns the shared 4×4 Daubechies D4 kernel. Read-only.
func D4() *mat.Dense { return d4 }

// ByID resolves a kernel id to its shared matrix.
// Returns ErrUnknownKernel for ids outside the built-in set.
func ByID(id ID) (*mat.Dense, error) {
	switch id {
	case HadamardID:
		return hadamard, nil
	case D4ID:
		return d4, nil
	default:
		return nil, fmt.Errorf("ByID(%d): %w", id, ErrUnknownKernel)
	}
}

// Validate checks that m is unitary: m·mᵀ must equal the identity within
// Tolerance in every entry. Returns ErrNonUnitary on any deviation.
//
// Complexity: O(d³) for a d×d matrix; d is 2 or 4 for the built-in kernels.
func Validate(m mat.Matrix) error {
	r, c := m.Dims()
	if r != c {
		return fmt.Errorf("Validate: %dx%d is not square: %w", r, c, ErrNonUnitary)
	}

	var prod mat.Dense
	prod.Mul(m, m.T())

	var want float64
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(prod.At(i, j)-want) > Tolerance {
				return fmt.Errorf("Validate: entry (%d,%d) off by %g: %w",
					i, j, math.Abs(prod.At(i, j)-want), ErrNonUnitary)
			}
		}
	}

	return nil
}
