// Package chebyshev evaluates Chebyshev polynomials of the first kind
// and their first three derivatives at real or complex points.
//
// What:
//
//   - T(n, s) = cos(n·arccos s), analytically continued to complex s.
//   - D1, D2, D3 use the exact trigonometric recurrences of
//     orthogonal-polynomial theory, written in terms of
//     t = arccos s and the lower orders.
//   - EndpointD1 supplies the analytic limit of the first derivative at
//     s = ±1, which the direct form cannot produce.
//
// Singular endpoints:
//
//	Every derivative order divides by sin(arccos s), which vanishes at
//	s = ±1. Evaluating D1, D2 or D3 exactly at the endpoints therefore
//	yields an undefined result (NaN at +1, an ill-conditioned quotient
//	at -1, where arccos lands on the floating-point neighbor of π).
//	That is expected numeric behavior, not
//	an error: it is neither trapped nor substituted, and callers that
//	need boundary values must use the closed-form limits instead
//	(EndpointD1 for the first order).
//
// Complexity: O(1) per call for T and D1, O(1) with a constant factor
// for D2 and D3 (they re-evaluate the lower orders).
//
// Reference: J. P. Boyd, Chebyshev and Fourier Spectral Methods (2001).
package chebyshev
