// Package circuit builds gate-level quantum wavelet circuits and accounts
// for their resources.
//
// What & Why:
//
//	Synthesize(n, kind) drives the multiscale factorization shared by the
//	Haar and Daubechies D4 transforms. The builder is an explicit state
//	machine over the active scale s, starting at s = n and decreasing to the
//	transform's minimum active width (1 for Haar, 2 for D4). At each scale:
//
//	  1. Local mixing: the kernel layer is applied over the active
//	     sub-register (positions 0..s-1). Haar places one Hadamard per
//	     active position; D4 places the 4×4 kernel on every adjacent pair
//	     (i, i+1), i = 0..s-2, in order.
//	  2. A perfect shuffle restricted to the active sub-register rotates the
//	     coarse coefficient to a fixed position, exposing the next scale.
//	  3. Position s-1 freezes: it is excluded from all further operations
//	     and retained unchanged in the output.
//
//	The loop is the executable form of the product
//
//	  U = ∏_{s=min..n} (Π_{2^s} · K_s) ⊗ I_{2^{n-s}}
//
//	with factors applied in circuit-execution order: widest scale first
//	(the rightmost matrix factor). K_s is H^{⊗s} for Haar and the ordered
//	overlapping-pair D4 layer otherwise.
//
// Ordering convention:
//
//	No trailing bit-reversal is appended; the emitted circuit realizes the
//	factorization's native output ordering. Synthesize, Compose and
//	ReferenceMatrix all share this convention, so the verification contract
//	below stays meaningful.
//
// Verification:
//
//	Compose multiplies the operation sequence into a dense 2^n × 2^n matrix.
//	This is Θ(2^3n) and exists for tests and diagnostics only — never call
//	it on a production path. The composed matrix must match ReferenceMatrix
//	(an independent tensor-product/permutation construction) within 1e-9;
//	VerifyCompose reports ErrVerificationMismatch otherwise.
//
// Resource accounting:
//
//	ComputeReport returns closed-form exchange/kernel counts and depth;
//	Circuit.Report derives the same figures by replay. The two must agree
//	for every valid input — tested as an invariant, not assumed.
//
// Complexity:
//
//	Synthesize emits O(n²) operations in O(n²) time. There is no shared
//	mutable state: concurrent Synthesize calls need no coordination.
//
// Errors:
//
//   - ErrRegisterTooSmall      if n is below the transform's minimum.
//   - ErrUnknownTransform      for kinds outside {Haar, DaubechiesD4}.
//   - ErrNilCircuit            when composing or replaying a nil circuit.
//   - ErrVerificationMismatch  composition deviates from the reference.
package circuit
