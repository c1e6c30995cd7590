package heinrichs

import "github.com/plasmakit/specdeform/chebyshev"

// H evaluates the Heinrichs basis function of degree n at s,
// (1-s²)·T_n(s). Exactly zero at s = ±1.
func H(n int, s complex128) complex128 {
	return (1 - s*s) * chebyshev.T(n, s)
}

// D1 evaluates the first derivative of H_n at s by the product rule:
//
//	(1-s²)·T_n'(s) - 2s·T_n(s).
//
// Undefined at s = ±1; see the package doc.
func D1(n int, s complex128) complex128 {
	return (1-s*s)*chebyshev.D1(n, s) - 2*s*chebyshev.T(n, s)
}

// D2 evaluates the second derivative of H_n at s:
//
//	(1-s²)·T_n''(s) - 4s·T_n'(s) - 2·T_n(s).
//
// Undefined at s = ±1.
func D2(n int, s complex128) complex128 {
	return (1-s*s)*chebyshev.D2(n, s) -
		4*s*chebyshev.D1(n, s) -
		2*chebyshev.T(n, s)
}

// D3 evaluates the third derivative of H_n at s:
//
//	(1-s²)·T_n'''(s) - 6s·T_n''(s) - 6·T_n'(s).
//
// Undefined at s = ±1.
func D3(n int, s complex128) complex128 {
	return (1-s*s)*chebyshev.D3(n, s) -
		6*s*chebyshev.D2(n, s) -
		6*chebyshev.D1(n, s)
}
