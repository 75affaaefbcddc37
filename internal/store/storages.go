package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// Storages groups the persistence backends used by the service layer and
// owns the underlying connection.
type Storages struct {
	// Catalog is the note metadata repository.
	Catalog NoteCatalog

	db *DB
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens a PostgreSQL or SQLite connection depending on cfg.DSN,
//     creating the SQLite file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [Storages] value wired to a fresh catalog repository.
func NewStorages(ctx context.Context, cfg config.Catalog, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("catalog connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Catalog: NewCatalogRepository(db, utils.NewTimeOrderedIDs(), logger),
		db:      db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
