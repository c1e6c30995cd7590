package chebyshev

import "math/cmplx"

// T evaluates the Chebyshev polynomial of degree n at s via
// cos(n·arccos s). For real s in [-1, 1] this is the standard
// trigonometric form; for complex s it is the analytic continuation of
// the same formula.
func T(n int, s complex128) complex128 {
	return cmplx.Cos(complex(float64(n), 0) * cmplx.Acos(s))
}

// D1 evaluates the first derivative of T_n at s,
// n·sin(n t)/sin t with t = arccos s.
//
// The result is non-finite at s = ±1 (removable singularity); see the
// package doc and EndpointD1.
func D1(n int, s complex128) complex128 {
	t := cmplx.Acos(s)
	nn := complex(float64(n), 0)

	return nn * cmplx.Sin(nn*t) / cmplx.Sin(t)
}

// D2 evaluates the second derivative of T_n at s:
//
//	(-n²·cos(n t) + T_n'(s)·cos t) / sin²t, t = arccos s.
//
// Non-finite at s = ±1.
func D2(n int, s complex128) complex128 {
	t := cmplx.Acos(s)
	nn := complex(float64(n), 0)
	sin := cmplx.Sin(t)

	return (-(nn*nn)*cmplx.Cos(nn*t) + D1(n, s)*cmplx.Cos(t)) / (sin * sin)
}

// D3 evaluates the third derivative of T_n at s:
//
//	((1-n²)·T_n'(s) + 3·T_n''(s)·cos t) / sin²t, t = arccos s.
//
// Non-finite at s = ±1.
func D3(n int, s complex128) complex128 {
	t := cmplx.Acos(s)
	nn := complex(float64(n), 0)
	sin := cmplx.Sin(t)

	return ((1-nn*nn)*D1(n, s) + 3*D2(n, s)*cmplx.Cos(t)) / (sin * sin)
}

// EndpointD1 returns the analytic limit of the first derivative at the
// domain endpoints: n² at s = +1 and (-1)^(n+1)·n² at s = -1.
//
// s must be exactly +1 or -1; anything else is a programmer error and
// panics. Interior points belong to D1.
func EndpointD1(n int, s float64) float64 {
	switch s {
	case 1:
		return float64(n * n)
	case -1:
		if n%2 == 0 {
			return -float64(n * n)
		}
		return float64(n * n)
	}
	panic("chebyshev: EndpointD1 requires s = +1 or s = -1")
}
