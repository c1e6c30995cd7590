// Package specdeform is the mathematical core for solving generalized
// eigenvalue problems that arise from spectral discretizations of a
// linearized physical operator (such as the Vlasov–Poisson system),
// using the spectral-deformation technique: the integration contour is
// analytically continued into the complex plane so that eigenvalues
// hidden under a continuous spectrum become resolvable.
//
// What lives here:
//
//	chebyshev/ — Chebyshev polynomials T_n and their first three
//	             derivatives at real or complex points
//	heinrichs/ — the boundary-vanishing basis (1-s²)·T_n(s) and its
//	             first three derivatives
//	field/     — immutable carrier for a named analytic profile
//	             (value + optional first/second derivative + label)
//	deform/    — the complex coordinate transform y(s) with its exact
//	             analytic derivatives, parameterized by a deformation
//	             amplitude and two shape coefficients
//	eigen/     — canonical sorting and NaN-sentinel screening of
//	             computed eigenpairs
//
// Supporting packages, none of which affect core correctness:
//
//	diag/      — component-named leveled diagnostics (log/slog)
//	progress/  — timer and progress bar for long parameter scans
//	prompt/    — interactive parameter input
//	parallel/  — worker-count heuristics and index fan-out
//	plot/      — plotting façade for spectra and profile curves
//
// Design guarantees:
//
//   - Every operation is pure and deterministic; nothing holds global
//     state, so concurrent use needs no locking.
//   - Real and complex arguments flow through a single complex128
//     representation; projecting back to the real axis is an explicit
//     step (field.Profile's Real* accessors), never an implicit cast.
//   - Validation failures surface as package-prefixed sentinel errors,
//     never as silently propagated NaN.
//   - Basis derivative evaluation at the domain endpoints s = ±1 is
//     non-finite by construction (the trigonometric substitution is
//     singular there); this is documented behavior, not an error.
//
// The generalized eigensolver itself, figure rendering, and process
// orchestration are external collaborators and live elsewhere.
package specdeform
