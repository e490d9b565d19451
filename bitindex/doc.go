// Package bitindex provides pure bit-manipulation utilities over fixed-width
// integer indices: n-bit reversal and single-step cyclic rotations.
//
// What & Why:
//
//	Permutations of an n-qubit register act on state indices by rearranging
//	the n bits of the index. Reverse, RotateLeft and RotateRight are the
//	index-level ground truth for the three named register permutations
//	(bit-reversal P, perfect shuffle Π, down-shift Q) and are used to
//	cross-validate synthesized exchange networks. They never appear on the
//	synthesis hot path.
//
// Complexity:
//
//	All operations run in O(n) time with zero allocations.
package bitindex
