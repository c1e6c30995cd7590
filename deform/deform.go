package deform

import (
	"fmt"

	"github.com/plasmakit/specdeform/field"
)

// Params holds the real deformation parameters: the amplitude Alpha and
// the two shape coefficients Beta0 and Beta1. The zero value is the
// undeformed map.
type Params struct {
	Alpha float64
	Beta0 float64
	Beta1 float64
}

// Name derives the deterministic coordinate name from the parameters,
// used for traceability in logs and figure filenames.
func (p Params) Name() string {
	return fmt.Sprintf("[a%gb%gb%g]", p.Alpha, p.Beta0, p.Beta1)
}

// Coordinate is a complex coordinate transform: a field.Profile whose
// three closures are y, y' and y'', plus the parameters that fully
// determine them.
type Coordinate struct {
	profile *field.Profile
	params  Params
}

// New builds the coordinate transform from [-1, 1] onto the contour
// through yStart and yEnd deformed by p. With p all zero the contour
// is the real segment [yStart, yEnd].
func New(yStart, yEnd float64, p Params, opts ...field.Option) Coordinate {
	a := complex(p.Alpha, 1)
	start := complex(yStart, 0)
	span := complex(yEnd-yStart, 0)
	b0 := complex(p.Beta0, 0)
	b1 := complex(p.Beta1, 0)

	value := func(s complex128) complex128 {
		return start + span*(s+1)/2 - a*(b0+b1*s)*(s*s-1)
	}
	deriv := func(s complex128) complex128 {
		return span/2 - a*(b1*(3*s*s-1)+2*b0*s)
	}
	deriv2 := func(s complex128) complex128 {
		return -2 * a * (3*b1*s + b0)
	}

	options := append([]field.Option{
		field.WithDeriv(deriv),
		field.WithDeriv2(deriv2),
	}, opts...)

	return Coordinate{
		profile: field.New(p.Name(), value, options...),
		params:  p,
	}
}

// Profile returns the underlying profile carrying y, y' and y''.
func (c Coordinate) Profile() *field.Profile { return c.profile }

// Params returns the deformation parameters.
func (c Coordinate) Params() Params { return c.params }

// Y evaluates the coordinate map at s.
func (c Coordinate) Y(s complex128) complex128 { return c.profile.Value(s) }

// IsDeformed reports whether the spectral-deformation technique is in
// effect: true iff any of Alpha, Beta0, Beta1 is nonzero.
func (c Coordinate) IsDeformed() bool {
	return c.params.Alpha != 0 || c.params.Beta0 != 0 || c.params.Beta1 != 0
}
