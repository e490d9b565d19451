// Package kernel holds the fixed local unitary kernels of the wavelet
// factorizations: the 2×2 Hadamard (Haar) and the 4×4 Daubechies D4 block.
//
// Both kernels are real orthogonal matrices built once from closed-form
// constants and shared by reference across all applications; callers must
// treat them as read-only. Unitarity is checked at load time within
// Tolerance as a guard against transcription errors in the constants — the
// check must never trigger in a correct build.
package kernel
