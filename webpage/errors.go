package webpage

import "errors"

var (
	// ErrNotFound is returned when a lookup refers to a URI that is not
	// part of the document set.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned when a caller supplies a parameter or
	// document set that violates a precondition.
	ErrInvalidArgument = errors.New("invalid argument")
)
