// Package deform constructs the complex coordinate transform of the
// spectral-deformation method.
//
// What:
//
//   - New(yStart, yEnd, Params{Alpha, Beta0, Beta1}) builds a
//     Coordinate whose field.Profile evaluates
//
//     y(s)   = yStart + (yEnd-yStart)(s+1)/2 - (α+i)(β₀+β₁s)(s²-1)
//     y'(s)  = (yEnd-yStart)/2 - (α+i)(β₁(3s²-1)+2β₀s)
//     y''(s) = -2(α+i)(3β₁s+β₀)
//
//     over s ∈ [-1, 1]. The three closures are analytically consistent
//     derivatives of one another — a correctness contract pinned by
//     finite-difference tests, not a naming convention.
//
//   - IsDeformed reports whether the deformation is actually in effect:
//     with all three parameters zero the map collapses to the identity
//     affine map from [-1, 1] onto [yStart, yEnd] and stays on the
//     real axis.
//
// Why:
//
//	Deforming the integration contour off the real axis moves the
//	continuous spectrum out of the way, exposing eigenvalues it would
//	otherwise hide (Crawford & Hislop, Ann. Phys. 189, 265 (1989)).
//	The fixed endpoints y(±1) are unaffected by the deformation term,
//	which vanishes with (s²-1).
//
// A Coordinate contains its Profile rather than extending it, so the
// parameter contract is testable on its own and the Profile carrier
// stays a closed abstraction.
package deform
