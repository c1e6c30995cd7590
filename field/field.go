package field

import (
	"fmt"
	"math"

	"github.com/plasmakit/specdeform/diag"
)

// Func is a scalar analytic profile evaluated at a complex point.
type Func func(complex128) complex128

// Profile is an immutable named scalar profile. Construct with New;
// the zero value is not usable.
type Profile struct {
	name   string
	label  string
	value  Func
	deriv  Func
	deriv2 Func
	log    *diag.Logger
}

// Option configures New.
type Option func(*Profile)

// WithDeriv supplies the first derivative of the profile.
func WithDeriv(d Func) Option {
	return func(p *Profile) { p.deriv = d }
}

// WithDeriv2 supplies the second derivative of the profile. A profile
// with a second derivative normally carries a first one as well; that
// is not enforced, but the unset order stays unreachable and fails
// explicitly on access.
func WithDeriv2(d Func) Option {
	return func(p *Profile) { p.deriv2 = d }
}

// WithLabel sets the display label. Default: the profile name.
func WithLabel(label string) Option {
	return func(p *Profile) { p.label = label }
}

// WithSink sets the diagnostic sink. Default: a stderr sink named
// after the profile.
func WithSink(log *diag.Logger) Option {
	return func(p *Profile) { p.log = log }
}

// New builds a Profile from a name and a required value function.
// A nil value function is a programmer error and panics.
func New(name string, value Func, opts ...Option) *Profile {
	if value == nil {
		panic("field: New requires a non-nil value function")
	}

	p := &Profile{name: name, label: name, value: value}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = diag.New(name)
	}
	return p
}

// Name reports the profile name.
func (p *Profile) Name() string { return p.name }

// Label reports the display label.
func (p *Profile) Label() string { return p.label }

// HasDeriv reports whether a first derivative was configured.
func (p *Profile) HasDeriv() bool { return p.deriv != nil }

// HasDeriv2 reports whether a second derivative was configured.
func (p *Profile) HasDeriv2() bool { return p.deriv2 != nil }

// Value evaluates the profile at a complex point.
func (p *Profile) Value(s complex128) complex128 {
	return p.value(s)
}

// Deriv evaluates the first derivative at a complex point. Fails with
// ErrDerivNotSet if no first derivative was configured.
func (p *Profile) Deriv(s complex128) (complex128, error) {
	if p.deriv == nil {
		p.log.Error("first derivative has not been set")
		return 0, fmt.Errorf("Deriv: %w", ErrDerivNotSet)
	}
	return p.deriv(s), nil
}

// Deriv2 evaluates the second derivative at a complex point. Fails
// with ErrDerivNotSet if no second derivative was configured.
func (p *Profile) Deriv2(s complex128) (complex128, error) {
	if p.deriv2 == nil {
		p.log.Error("second derivative has not been set")
		return 0, fmt.Errorf("Deriv2: %w", ErrDerivNotSet)
	}
	return p.deriv2(s), nil
}

// RealValue evaluates the profile at the real point x and returns the
// real part. The complexification of the argument and the projection
// of the result are this method's whole job; they are deliberately not
// implicit anywhere else.
func (p *Profile) RealValue(x float64) (float64, error) {
	if err := p.checkFinite("RealValue", x); err != nil {
		return 0, err
	}
	return real(p.value(complex(x, 0))), nil
}

// RealDeriv evaluates the first derivative at the real point x and
// returns the real part.
func (p *Profile) RealDeriv(x float64) (float64, error) {
	if err := p.checkFinite("RealDeriv", x); err != nil {
		return 0, err
	}
	v, err := p.Deriv(complex(x, 0))
	if err != nil {
		return 0, fmt.Errorf("RealDeriv: %w", ErrDerivNotSet)
	}
	return real(v), nil
}

// RealDeriv2 evaluates the second derivative at the real point x and
// returns the real part.
func (p *Profile) RealDeriv2(x float64) (float64, error) {
	if err := p.checkFinite("RealDeriv2", x); err != nil {
		return 0, err
	}
	v, err := p.Deriv2(complex(x, 0))
	if err != nil {
		return 0, fmt.Errorf("RealDeriv2: %w", ErrDerivNotSet)
	}
	return real(v), nil
}

func (p *Profile) checkFinite(op string, x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		p.log.Error(fmt.Sprintf("%s: invalid argument %g", op, x))
		return fmt.Errorf("%s: %w", op, ErrNonFiniteArgument)
	}
	return nil
}
