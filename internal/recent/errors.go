package recent

import "errors"

var (
	// ErrInvalidArgument is returned by Add for a location that cannot be
	// stored: empty, multi-line or too long.
	ErrInvalidArgument = errors.New("invalid recent location")

	// ErrIndexOutOfRange is returned by Get and Remove for a bad index.
	ErrIndexOutOfRange = errors.New("recent list index out of range")
)
