package bitindex

import "errors"

var (
	// ErrInvalidWidth is returned when the bit width n is smaller than 1.
	// Usage: if errors.Is(err, bitindex.ErrInvalidWidth) { /* fix n */ }.
	ErrInvalidWidth = errors.New("bitindex: width must be at least 1")

	// ErrIndexRange is returned when the index x lies outside [0, 2^n).
	// Usage: if errors.Is(err, bitindex.ErrIndexRange) { /* fix x */ }.
	ErrIndexRange = errors.New("bitindex: index outside [0, 2^n)")
)

// Reverse returns x with its n-bit binary representation reversed.
//
// Returns ErrInvalidWidth if n < 1, ErrIndexRange if x ∉ [0, 2^n).
// Complexity: O(n).
func Reverse(x, n int) (int, error) {
	if err := check(x, n); err != nil {
		return 0, err
	}

	var r int
	for i := 0; i < n; i++ {
		r = (r << 1) | ((x >> i) & 1)
	}

	return r, nil
}

// RotateLeft returns the n-bit cyclic left rotation of x by one position:
// the most significant bit wraps around to weight 1.
//
// Returns ErrInvalidWidth if n < 1, ErrIndexRange if x ∉ [0, 2^n).
// Complexity: O(1).
func RotateLeft(x, n int) (int, error) {
	if err := check(x, n); err != nil {
		return 0, err
	}

	return ((x << 1) | (x >> (n - 1))) & ((1 << n) - 1), nil
}

// RotateRight returns the n-bit cyclic right rotation of x by one position:
// the least significant bit wraps around to weight 2^(n-1).
// RotateRight is the inverse of RotateLeft at equal width.
//
// Returns ErrInvalidWidth if n < 1, ErrIndexRange if x ∉ [0, 2^n).
// Complexity: O(1).
func RotateRight(x, n int) (int, error) {
	if err := check(x, n); err != nil {
		return 0, err
	}

	return (x >> 1) | ((x & 1) << (n - 1)), nil
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// check validates the (x, n) pair shared by all operations.
func check(x, n int) error {
	if n < 1 {
		return ErrInvalidWidth
	}
	if x < 0 || x >= 1<<n {
		return ErrIndexRange
	}

	return nil
}
