package field

import "errors"

var (
	// ErrDerivNotSet indicates a derivative accessor was invoked on a
	// Profile built without that derivative function.
	ErrDerivNotSet = errors.New("field: derivative has not been configured")

	// ErrNonFiniteArgument indicates NaN or ±Inf was passed where a
	// finite real coordinate is required.
	ErrNonFiniteArgument = errors.New("field: argument must be a finite real number")
)
