// Package permutation synthesizes elementary exchange networks realizing the
// named register permutations used by quantum wavelet factorizations.
//
// What & Why:
//
//	A permutation of n register positions is never applied as a bulk
//	relabeling: the resource accounting of wavelet circuits depends on an
//	at-most-nearest-neighbor cost model, so every permutation is realized as
//	an ordered sequence of pairwise exchanges. Three permutations are
//	first-class:
//		• PerfectShuffle Π — cyclic left rotation of position labels:
//		  position i receives the content of position (i+1) mod n.
//		  Realized as n-1 adjacent exchanges walking position 0 down to n-1.
//		• BitReversal P — position i receives the content of position n-1-i.
//		  Realized as ⌊n/2⌋ disjoint exchanges, depth 1.
//		• DownShift Q — the exact algebraic inverse of Π: the same multiset
//		  of exchanges replayed in reverse order (exchanges are self-inverse).
//
// Index-level ground truth (see package bitindex):
//
//	Π ↔ RotateLeft, Q ↔ RotateRight, P ↔ Reverse,
//
// where positions number bits most-significant first.
//
// Post-condition (holds for every synthesized network): replaying the
// exchange sequence against the identity array reproduces exactly the
// permutation's target mapping.
//
// Complexity:
//
//	Synthesize runs in O(n) time and allocations; Apply replays in O(n).
//
// Errors:
//
//   - ErrInvalidRegisterSize    if n < 1.
//   - ErrUnsupportedPermutation for unrecognized Kind values.
package permutation
