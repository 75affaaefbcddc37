package digest

import "errors"

// ErrMalformedInput is returned when a hex string has odd length, contains
// non-hex characters, or decodes to a value of the wrong size.
var ErrMalformedInput = errors.New("malformed digest input")
