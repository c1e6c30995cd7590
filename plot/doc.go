// Package plot is the figure façade: it turns canonical eigenvalue
// matrices and profiles into pyplot calls.
//
// Data extraction (SpectrumPoints, CurvePoints) is pure and tested.
// The rendering entry points (Spectrum, Curve) hand those points to
// github.com/phil-mansfield/pyplot, whose Show generates and runs a
// python script; call them only from code that has a matplotlib
// environment available. None of the math core depends on this
// package.
package plot
