package eigen

import "errors"

var (
	// ErrNilMatrix indicates a nil matrix was passed where an allocated
	// one is required.
	ErrNilMatrix = errors.New("eigen: matrix must be non-nil")

	// ErrShapeMismatch indicates the shapes of the input arrays do not
	// match the eigenmode count.
	ErrShapeMismatch = errors.New("eigen: input array shapes do not match")
)
