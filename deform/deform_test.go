package deform_test

import (
	"io"
	"math/cmplx"
	"testing"

	"github.com/plasmakit/specdeform/deform"
	"github.com/plasmakit/specdeform/diag"
	"github.com/plasmakit/specdeform/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fdStep = 1e-6

var samples = []complex128{
	complex(-0.9, 0), complex(-0.4, 0), complex(0, 0),
	complex(0.35, 0), complex(0.8, 0),
	complex(0.2, 0.3), complex(-0.5, -0.1),
}

func quiet(name string) field.Option {
	return field.WithSink(diag.New(name, diag.WithWriter(io.Discard)))
}

func centralDiff(f func(complex128) complex128, s complex128, h float64) complex128 {
	hh := complex(h, 0)
	return (f(s+hh) - f(s-hh)) / (2 * hh)
}

// TestNew_UndeformedIsAffine verifies the all-zero parameter case: the
// map is exactly the affine interpolation onto [yStart, yEnd], stays on
// the real axis, and reports itself undeformed.
func TestNew_UndeformedIsAffine(t *testing.T) {
	c := deform.New(-2, 3, deform.Params{}, quiet("[a0b0b0]"))

	assert.False(t, c.IsDeformed())
	assert.Equal(t, "[a0b0b0]", c.Profile().Name())

	for _, s := range samples {
		want := complex(-2, 0) + complex(5, 0)*(s+1)/2
		assert.InDelta(t, real(want), real(c.Y(s)), 1e-12, "Re y(%v)", s)
		assert.InDelta(t, imag(want), imag(c.Y(s)), 1e-12, "Im y(%v)", s)
	}
}

// TestNew_EndpointsPinned verifies the deformation term vanishes at
// s = ±1, so the contour endpoints never move.
func TestNew_EndpointsPinned(t *testing.T) {
	c := deform.New(0, 1, deform.Params{Alpha: 0.7, Beta0: -0.3, Beta1: 0.2},
		quiet("[a0.7b-0.3b0.2]"))

	assert.True(t, c.IsDeformed())
	assert.InDelta(t, 0, cmplx.Abs(c.Y(-1)-complex(0, 0)), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(c.Y(1)-complex(1, 0)), 1e-12)
}

// TestNew_DeformationLeavesRealAxis verifies a nonzero Beta0 lifts the
// interior of the contour off the real axis: Im y(0) = β₀.
func TestNew_DeformationLeavesRealAxis(t *testing.T) {
	c := deform.New(0, 1, deform.Params{Beta0: 0.25}, quiet("[a0b0.25b0]"))

	assert.InDelta(t, 0.25, imag(c.Y(0)), 1e-12)
}

// TestDerivatives_ConsistentWithValue checks y' against a centered
// difference of y and y'' against a centered difference of y', for a
// spread of parameter sets including the all-zero case.
func TestDerivatives_ConsistentWithValue(t *testing.T) {
	paramSets := []deform.Params{
		{},
		{Alpha: 0.3},
		{Beta0: -0.2},
		{Beta1: 0.15},
		{Alpha: 0.5, Beta0: 0.1, Beta1: -0.3},
		{Alpha: -1.2, Beta0: 0.8, Beta1: 0.6},
	}

	for _, p := range paramSets {
		c := deform.New(-1.5, 2.5, p, quiet(p.Name()))
		prof := c.Profile()

		for _, s := range samples {
			fd1 := centralDiff(prof.Value, s, fdStep)
			d1, err := prof.Deriv(s)
			require.NoError(t, err)
			assert.InDelta(t, 0, cmplx.Abs(d1-fd1), 1e-6,
				"y' vs finite difference, params=%v s=%v", p, s)

			derivFn := func(z complex128) complex128 {
				v, derr := prof.Deriv(z)
				require.NoError(t, derr)
				return v
			}
			fd2 := centralDiff(derivFn, s, fdStep)
			d2, err := prof.Deriv2(s)
			require.NoError(t, err)
			assert.InDelta(t, 0, cmplx.Abs(d2-fd2), 1e-6,
				"y'' vs finite difference, params=%v s=%v", p, s)
		}
	}
}

// TestParams_Name pins the deterministic naming scheme.
func TestParams_Name(t *testing.T) {
	assert.Equal(t, "[a0b0b0]", deform.Params{}.Name())
	assert.Equal(t, "[a0.5b0.1b-0.3]",
		deform.Params{Alpha: 0.5, Beta0: 0.1, Beta1: -0.3}.Name())
}

// TestIsDeformed_AnySingleParameter verifies the predicate fires on
// each parameter independently.
func TestIsDeformed_AnySingleParameter(t *testing.T) {
	cases := []struct {
		p    deform.Params
		want bool
	}{
		{deform.Params{}, false},
		{deform.Params{Alpha: 1e-9}, true},
		{deform.Params{Beta0: -0.1}, true},
		{deform.Params{Beta1: 0.1}, true},
	}

	for _, tc := range cases {
		c := deform.New(0, 1, tc.p, quiet(tc.p.Name()))
		assert.Equal(t, tc.want, c.IsDeformed(), "params=%v", tc.p)
	}
}
