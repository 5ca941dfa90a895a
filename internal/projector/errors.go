package projector

import "errors"

var (
	// ErrInvalidInput reports a query outside the accepted ranges.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnreachableTarget reports a search that cannot finish within MaxIterations.
	ErrUnreachableTarget = errors.New("unreachable target")
)
