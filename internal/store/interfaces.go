package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteCatalog is the metadata index of notes written or opened by this
// installation.
type NoteCatalog interface {
	// Upsert inserts entry or, when its path is already catalogued, updates
	// size and updated_at (and last_opened_at when entry carries one).
	Upsert(ctx context.Context, entry models.NoteMetadata) error
	// MarkOpened stamps last_opened_at for path.
	MarkOpened(ctx context.Context, path string, at time.Time) error
	Get(ctx context.Context, path string) (models.NoteMetadata, error)
	// List returns every entry, most recently updated first.
	List(ctx context.Context) ([]models.NoteMetadata, error)
	Delete(ctx context.Context, path string) error
}

// IDGenerator produces identifiers for new catalog entries.
type IDGenerator interface {
	Generate() string
}
