package note

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the container file does not exist or
	// cannot be read.
	ErrNotFound = errors.New("note file not found or unreadable")

	// ErrCrypto is returned when a container passes password verification
	// but cannot be decrypted, i.e. the file is corrupted or tampered with.
	ErrCrypto = errors.New("note decryption failed")

	// ErrMalformedContainer is returned when a file is too short to hold the
	// fixed header. It wraps [ErrCrypto].
	ErrMalformedContainer = fmt.Errorf("%w: malformed container", ErrCrypto)

	// ErrContentTooLong is returned by SetContent when the text exceeds
	// [MaxContentLength] characters.
	ErrContentTooLong = errors.New("note content too long")
)
