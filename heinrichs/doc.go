// Package heinrichs evaluates the Heinrichs basis
// H_n(s) = (1-s²)·T_n(s) and its first three derivatives.
//
// The (1-s²) factor makes every basis function vanish at s = ±1, which
// is how homogeneous boundary conditions are enforced in the spectral
// discretization. All four orders are obtained by applying the product
// rule analytically and are expressed purely in terms of the chebyshev
// package's four orders; nothing here introduces a new singularity.
//
// Endpoint behavior:
//
//	H itself is exactly zero at s = ±1. The derivatives, however, are
//	built on the Chebyshev derivatives, every order of which divides by
//	sin(arccos s); the analytically finite limits (e.g. H'(±1) = ∓2 for
//	even n) are therefore not reachable by direct evaluation at the
//	exact endpoints — the 0·∞ product evaluates as NaN at s = +1. This
//	was checked numerically for all orders up to the third; keep
//	derivative evaluation strictly inside (-1, 1).
//
// Reference: J. P. Boyd, Chebyshev and Fourier Spectral Methods (2001).
package heinrichs
