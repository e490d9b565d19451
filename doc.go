// Package qwavelet synthesizes explicit, gate-level unitary circuits for
// quantum wavelet transforms (Haar and Daubechies D4) over an n-qubit register.
//
// 🚀 What is qwavelet?
//
//	A deterministic, side-effect-free synthesis engine that factorizes a
//	2^n × 2^n wavelet transform into an ordered sequence of elementary
//	operations:
//		• Local kernels: fixed small unitaries (2×2 Hadamard, 4×4 Daubechies D4)
//		• Permutation networks: perfect shuffle Π, bit-reversal P, down-shift Q,
//		  realized exclusively as pairwise exchange sequences
//		• Exact resource accounting: closed-form gate counts and depth per transform
//
// ✨ Why choose qwavelet?
//
//   - Fail-fast – invalid register sizes and unknown kinds abort before any
//     partial circuit is observable
//   - Inspectable – the circuit is plain data; no execution runtime is touched
//   - Verifiable – dense matrix composition (exponential, test-only) must match
//     the product-formula reference within 1e-9
//   - Pure Go + gonum – no cgo, no hidden state, safe for concurrent callers
//
// Everything is organized under four subpackages:
//
//	bitindex/    — n-bit index reversal & rotation, ground truth for permutations
//	permutation/ — exchange-network synthesis for Π, P and Q
//	kernel/      — fixed Hadamard and Daubechies D4 unitary kernels
//	circuit/     — the scale-recursion builder, composition and resource model
//
// Quick sketch of the Haar factorization the builder executes:
//
//	H_{2^n} = ∏_{s=n..1} (Π_{2^s} · H^{⊗s}) ⊗ I_{2^{n-s}}
//
// each factor being one (kernel layer, shuffle) pair at active width s.
//
//	go get github.com/katalvlaran/qwavelet
package qwavelet
