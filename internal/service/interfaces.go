package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService is the boundary between the command-line shell and the note
// core. Paths are used exactly as given; nothing is resolved or cleaned.
type NoteService interface {
	// Open decrypts the note at path. A wrong password yields ErrWrongPassword.
	Open(ctx context.Context, path, password string) (string, error)
	// OpenInteractive asks prompt for the password up to MaxPasswordAttempts
	// times and returns the content together with the accepted password.
	OpenInteractive(ctx context.Context, path string, prompt PasswordPrompter) (content, password string, err error)
	// Save encrypts content into path under password.
	Save(ctx context.Context, path, password, content string) error
	// Recent lists remembered note paths, most recent first.
	Recent(ctx context.Context) ([]string, error)
	RemoveRecent(ctx context.Context, index int) error
	// Delete removes the note file and forgets it everywhere.
	Delete(ctx context.Context, path string) error
	Catalog(ctx context.Context) ([]models.NoteMetadata, error)
	GeneratePassword(length int, classes crypto.SymbolClass) (string, error)
}

// PasswordPrompter asks the user for the password of a note.
type PasswordPrompter interface {
	PromptPassword(ctx context.Context, req PromptRequest) (string, error)
}

// PromptRequest describes one password attempt.
type PromptRequest struct {
	Path        string
	Attempt     int
	MaxAttempts int
	// LastError is the failure of the previous attempt, nil on the first.
	LastError error
}

// PasswordPromptFunc adapts a function to [PasswordPrompter].
type PasswordPromptFunc func(ctx context.Context, req PromptRequest) (string, error)

// PromptPassword implements [PasswordPrompter].
func (f PasswordPromptFunc) PromptPassword(ctx context.Context, req PromptRequest) (string, error) {
	return f(ctx, req)
}
