// Package tolerance provides floating-point comparison helpers for the
// vector algebra packages.
//
// Comparisons are absolute-or-relative: two values are approximately equal
// when their difference is within the tolerance, either absolutely or
// relative to the larger magnitude of the two.
//
// Constants:
//   - Default: tolerance used for vector equality, zero tests and the
//     parallel/orthogonal predicates (0.001)
//   - Clamp: tight tolerance used to snap cosines back onto [-1, 1]
//     before taking an inverse cosine (1e-8)
//
// Example Usage:
//
//	if tolerance.ApproximatelyEqual(a, b, tolerance.Default) {
//	    ...
//	}
//	cos = tolerance.ClampIfClose(cos, 1, tolerance.Clamp)
package tolerance
