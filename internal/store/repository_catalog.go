// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	catalogTable = "notes_catalog"

	// maxRetries bounds re-execution of a statement that failed with a
	// retryable driver error.
	maxRetries = 3
	// retryBaseDelay is the first backoff interval; it doubles per retry.
	retryBaseDelay = 50 * time.Millisecond
)

var catalogColumns = []string{"id", "path", "size_bytes", "created_at", "updated_at", "last_opened_at"}

// catalogRepository is the database/sql implementation of [NoteCatalog].
// It works on both SQLite and PostgreSQL; the dialect differences
// (placeholders, error codes) live in [DB].
type catalogRepository struct {
	db        *DB
	ids       IDGenerator
	logger    *logger.Logger
	retryBase time.Duration
}

// NewCatalogRepository constructs a [NoteCatalog] backed by db. ids supplies
// identifiers for new entries.
func NewCatalogRepository(db *DB, ids IDGenerator, logger *logger.Logger) NoteCatalog {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		db:        db,
		ids:       ids,
		logger:    logger,
		retryBase: retryBaseDelay,
	}
}

// Upsert stores entry keyed by its path. A new entry gets a fresh ID and,
// when unset, CreatedAt/UpdatedAt of now. On conflict only size, updated_at
// and a non-nil last_opened_at are overwritten; id and created_at stay.
func (r *catalogRepository) Upsert(ctx context.Context, entry models.NoteMetadata) error {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	if entry.ID == "" {
		entry.ID = r.ids.Generate()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = now
	}

	query, args, err := r.db.builder().
		Insert(catalogTable).
		Columns(catalogColumns...).
		Values(entry.ID, entry.Path, entry.SizeBytes, entry.CreatedAt, entry.UpdatedAt, nullTime(entry.LastOpenedAt)).
		Suffix(`ON CONFLICT (path) DO UPDATE SET
			size_bytes = excluded.size_bytes,
			updated_at = excluded.updated_at,
			last_opened_at = COALESCE(excluded.last_opened_at, ` + catalogTable + `.last_opened_at)`).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Upsert").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Upsert").Str("pg_code", postgresError(err)).Msg("error upserting catalog entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// MarkOpened sets last_opened_at for path. [ErrCatalogEntryNotFound] is
// returned when the path is not catalogued.
func (r *catalogRepository) MarkOpened(ctx context.Context, path string, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update(catalogTable).
		Set("last_opened_at", at).
		Where(sq.Eq{"path": path}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.MarkOpened").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*catalogRepository.MarkOpened", query, args)
}

// Get returns the entry for path or [ErrCatalogEntryNotFound].
func (r *catalogRepository) Get(ctx context.Context, path string) (models.NoteMetadata, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(catalogColumns...).
		From(catalogTable).
		Where(sq.Eq{"path": path}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Get").Msg("error building query")
		return models.NoteMetadata{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.NoteMetadata
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		entry, scanErr = scanEntry(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.NoteMetadata{}, ErrCatalogEntryNotFound
	case err != nil:
		log.Err(err).Str("func", "*catalogRepository.Get").Msg("error getting catalog entry")
		return models.NoteMetadata{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// List returns every catalogued note, most recently updated first.
func (r *catalogRepository) List(ctx context.Context) ([]models.NoteMetadata, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(catalogColumns...).
		From(catalogTable).
		OrderBy("updated_at DESC", "path ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entries []models.NoteMetadata
	err = r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		entries = entries[:0]
		for rows.Next() {
			entry, err := scanEntry(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			entries = append(entries, entry)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.List").Msg("error listing catalog")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

// Delete removes the entry for path or returns [ErrCatalogEntryNotFound].
func (r *catalogRepository) Delete(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete(catalogTable).
		Where(sq.Eq{"path": path}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*catalogRepository.Delete", query, args)
}

func (r *catalogRepository) execAffectingOne(ctx context.Context, fn, query string, args []any) error {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrCatalogEntryNotFound
	}

	return nil
}

// withRetry runs fn, repeating it with exponential backoff while the
// driver reports a retryable error.
func (r *catalogRepository) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(r.retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
			r.logger.Warn().Err(err).Msg("retryable catalog error")
			return retry.RetryableError(err)
		}
		return err
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (models.NoteMetadata, error) {
	var (
		entry      models.NoteMetadata
		lastOpened sql.NullTime
	)

	if err := row.Scan(&entry.ID, &entry.Path, &entry.SizeBytes, &entry.CreatedAt, &entry.UpdatedAt, &lastOpened); err != nil {
		return models.NoteMetadata{}, err
	}

	if lastOpened.Valid {
		t := lastOpened.Time
		entry.LastOpenedAt = &t
	}

	return entry, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
