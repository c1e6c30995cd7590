// Package field defines Profile, the immutable carrier for a named
// scalar analytic profile: a value function over complex128 plus
// optional first and second derivative functions and a display label.
//
// What:
//
//   - New(name, value, opts...) captures the closures once; a Profile
//     never mutates afterwards and is safe for concurrent use.
//   - Value/Deriv/Deriv2 evaluate at an arbitrary complex point.
//     Accessing a derivative that was never configured fails with
//     ErrDerivNotSet — explicitly, not with a silent NaN.
//   - RealValue/RealDeriv/RealDeriv2 are the explicit real-axis
//     projection: the argument is complexified to (x, 0), the profile
//     is evaluated, and the real part is returned. Non-finite x is
//     rejected with ErrNonFiniteArgument before evaluation.
//
// Why:
//
//   - Background fields (density, flow, temperature profiles) and the
//     deform package's complex coordinate both need the same carrier;
//     keeping "complexify then take the real part" a visible step is
//     what lets one set of closures serve both real and complex call
//     sites without operator tricks.
//
// Errors:
//
//   - ErrDerivNotSet: derivative accessor invoked on a Profile built
//     without that derivative.
//   - ErrNonFiniteArgument: NaN or ±Inf passed to a Real* accessor.
//
// Every failure is reported through the profile's diagnostic sink
// before the error returns, so a scan that dies deep in a parameter
// loop names the offending profile.
//
// Options:
//
//   - WithDeriv, WithDeriv2: supply the derivative closures.
//   - WithLabel: display label (defaults to the name).
//   - WithSink: diagnostic sink (defaults to a stderr sink named after
//     the profile).
package field
