package cli

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/note"
	"github.com/MKhiriev/go-note-keeper/internal/recent"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
)

// ErrInvalidIndex is returned by "recent remove" for a non-numeric or
// negative index.
var ErrInvalidIndex = errors.New("index must be a non-negative integer")

// ErrPasswordRequired is returned by "write" when the text is read from
// stdin and --password is missing.
var ErrPasswordRequired = errors.New("--password is required when the note text comes from stdin")

// describeError turns the errors a user can cause into a one-line message.
// Anything else is printed as is.
func describeError(err error) string {
	switch {
	case errors.Is(err, service.ErrTooManyAttempts):
		return fmt.Sprintf("wrong password, gave up after %d attempts", service.MaxPasswordAttempts)
	case errors.Is(err, service.ErrWrongPassword):
		return "wrong password"
	case errors.Is(err, tui.ErrCancelled):
		return "cancelled"
	case errors.Is(err, note.ErrContentTooLong):
		return fmt.Sprintf("note is longer than %d characters", note.MaxContentLength)
	case errors.Is(err, note.ErrCrypto):
		return "note is corrupted or has been tampered with"
	case errors.Is(err, recent.ErrIndexOutOfRange):
		return "no recent note with that index"
	case errors.Is(err, crypto.ErrInvalidLength):
		return fmt.Sprintf("password length must be between 1 and %d", crypto.MaxPasswordLength)
	}
	return err.Error()
}
