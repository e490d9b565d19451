package circuit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qwavelet/bitindex"
	"github.com/katalvlaran/qwavelet/kernel"
)

// Tolerance bounds the allowed entrywise deviation between the composed
// circuit matrix and the product-formula reference.
const Tolerance = 1e-9

// swapBlock is the 4×4 exchange unitary on a two-qubit subspace.
var swapBlock = mat.NewDense(4, 4, []float64{
	1, 0, 0, 0,
	0, 0, 1, 0,
	0, 1, 0, 0,
	0, 0, 0, 1,
})

// Compose multiplies the circuit's operations, in execution order, into a
// single dense 2^n × 2^n unitary.
//
// WARNING: exponential. Dense composition costs Θ(2^3n) per operation and is
// intended for verification and diagnostics at small n only — never call it
// on a production synthesis path.
//
// Returns ErrNilCircuit for a nil receiver argument and ErrUnknownOperation
// or kernel.ErrUnknownKernel for malformed operations (impossible for
// circuits built by Synthesize).
func Compose(c *Circuit) (*mat.Dense, error) {
	if c == nil {
		return nil, fmt.Errorf("Compose: %w", ErrNilCircuit)
	}

	dim := 1 << c.Size
	u := identity(dim)

	var (
		block mat.Matrix
		err   error
	)
	for i, op := range c.Ops {
		// Resolve the local block for this operation.
		switch op.Type {
		case ExchangeOp:
			block = swapBlock
		case KernelOp:
			if block, err = kernel.ByID(op.Kernel); err != nil {
				return nil, fmt.Errorf("Compose: op %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("Compose: op %d has tag %d: %w", i, op.Type, ErrUnknownOperation)
		}

		// Left-multiply the embedded block: later operations act after
		// earlier ones.
		u = mul(embed(block, op.Positions, c.Size), u)
	}

	return u, nil
}

// ReferenceMatrix builds the transform's product-formula matrix directly
// from tensor products and index-mapped permutation matrices, without
// touching the exchange-network synthesis path. It is the independent
// ground truth Compose is verified against.
//
// Same cost caveats and errors as Synthesize/Compose.
func ReferenceMatrix(n int, kind Transform) (*mat.Dense, error) {
	if kind != Haar && kind != DaubechiesD4 {
		return nil, fmt.Errorf("ReferenceMatrix(%d, kind=%d): %w", n, kind, ErrUnknownTransform)
	}
	if n < kind.MinSize() {
		return nil, fmt.Errorf("ReferenceMatrix(%d, %s): %w", n, kind, ErrRegisterTooSmall)
	}

	u := identity(1 << n)
	for s := n; s >= kind.minWidth(); s-- {
		// Kernel layer at scale s as an explicit tensor product.
		if kind == Haar {
			layer := identity(1)
			for q := 0; q < s; q++ {
				layer = kron(layer, kernel.Hadamard())
			}
			u = mul(kron(layer, identity(1<<(n-s))), u)
		} else {
			// Ordered overlapping D4 placements: I ⊗ K ⊗ I per pair.
			for i := 0; i < s-1; i++ {
				u = mul(kron(kron(identity(1<<i), kernel.D4()), identity(1<<(n-i-2))), u)
			}
		}

		// Restricted shuffle as an index map: rotate the top s bits left.
		u = mul(shuffleMatrix(n, s), u)
	}

	return u, nil
}

// VerifyCompose composes the circuit and compares it entrywise against
// ReferenceMatrix. A deviation beyond Tolerance yields
// ErrVerificationMismatch. Diagnostic/test path only.
func VerifyCompose(c *Circuit) error {
	if c == nil {
		return fmt.Errorf("VerifyCompose: %w", ErrNilCircuit)
	}

	got, err := Compose(c)
	if err != nil {
		return err
	}
	want, err := ReferenceMatrix(c.Size, c.Transform)
	if err != nil {
		return err
	}

	dim := 1 << c.Size
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if d := math.Abs(got.At(i, j) - want.At(i, j)); d > Tolerance {
				return fmt.Errorf("VerifyCompose(%s, n=%d): entry (%d,%d) off by %g: %w",
					c.Transform, c.Size, i, j, d, ErrVerificationMismatch)
			}
		}
	}

	return nil
}

// embed lifts a 2^k-dimensional block acting on the listed register
// positions (most significant first) into the full 2^n-dimensional space.
func embed(block mat.Matrix, pos []int, n int) *mat.Dense {
	dim := 1 << n
	sub := 1 << len(pos)
	out := mat.NewDense(dim, dim, nil)

	var xs, rest, y int
	for x := 0; x < dim; x++ {
		// Sub-index of x on the block's positions; pos[0] holds the most
		// significant sub-bit. Position q maps to index bit n-1-q.
		xs = 0
		for _, p := range pos {
			xs = (xs << 1) | ((x >> (n - 1 - p)) & 1)
		}

		// Remainder of x with the block's bits cleared; invariant under the
		// block's action.
		rest = x
		for _, p := range pos {
			rest &^= 1 << (n - 1 - p)
		}

		for ys := 0; ys < sub; ys++ {
			y = rest
			for j, p := range pos {
				if (ys>>(len(pos)-1-j))&1 == 1 {
					y |= 1 << (n - 1 - p)
				}
			}
			out.Set(y, x, block.At(ys, xs))
		}
	}

	return out
}

// shuffleMatrix returns the permutation matrix of the perfect shuffle
// restricted to the top s of n positions: the top s index bits rotate left,
// the remaining low bits are untouched. For s == 1 this is the identity.
func shuffleMatrix(n, s int) *mat.Dense {
	dim := 1 << n
	out := mat.NewDense(dim, dim, nil)
	lowMask := 1<<(n-s) - 1

	var top, y int
	for x := 0; x < dim; x++ {
		// bitindex.RotateLeft is total for s ≥ 1 and top < 2^s.
		top, _ = bitindex.RotateLeft(x>>(n-s), s)
		y = top<<(n-s) | x&lowMask
		out.Set(y, x, 1)
	}

	return out
}

// kron returns the Kronecker product a ⊗ b.
func kron(a, b mat.Matrix) *mat.Dense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := mat.NewDense(ar*br, ac*bc, nil)

	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			for p := 0; p < br; p++ {
				for q := 0; q < bc; q++ {
					out.Set(i*br+p, j*bc+q, a.At(i, j)*b.At(p, q))
				}
			}
		}
	}

	return out
}

// identity returns the d×d identity matrix.
func identity(d int) *mat.Dense {
	out := mat.NewDense(d, d, nil)
	for i := 0; i < d; i++ {
		out.Set(i, i, 1)
	}

	return out
}

// mul returns a·b as a fresh matrix.
func mul(a, b mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Mul(a, b)

	return &out
}
