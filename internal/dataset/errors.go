package dataset

import "github.com/containerd/errdefs"

// Errors returned by the dynamically typed append path. Both satisfy
// errdefs.IsInvalidArgument.
var (
	// ErrNotSequence indicates the argument was not a slice or array.
	ErrNotSequence = errdefs.ErrInvalidArgument.WithMessage("data must be a sequence")

	// ErrNotNumeric indicates a sequence element was not a finite number.
	ErrNotNumeric = errdefs.ErrInvalidArgument.WithMessage("data must contain only finite numbers")
)
