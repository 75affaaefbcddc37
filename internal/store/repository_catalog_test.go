package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

func newTestCatalogRepo(t *testing.T) (*catalogRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &catalogRepository{
		db: &DB{
			DB:                 db,
			placeholder:        sq.Dollar,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		ids:       fixedIDs{id: "0190b3c4-0000-7000-8000-000000000001"},
		logger:    l,
		retryBase: time.Millisecond,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var selectColumns = []string{"id", "path", "size_bytes", "created_at", "updated_at", "last_opened_at"}

func TestUpsert_Success(t *testing.T) {
	repo, mock := newTestCatalogRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notes_catalog (id,path,size_bytes,created_at,updated_at,last_opened_at) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (path) DO UPDATE")).
		WithArgs("0190b3c4-0000-7000-8000-000000000001", "/notes/a.note", int64(120), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), models.NoteMetadata{Path: "/notes/a.note", SizeBytes: 120})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_KeepsGivenID(t *testing.T) {
	repo, mock := newTestCatalogRepo(t)

	mock.ExpectExec("INSERT INTO notes_catalog").
		WithArgs("given", "/n", int64(0), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), models.NoteMetadata{ID: "given", Path: "/n"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_RetriesRetryableError(t *testing.T) {
	repo, mock := newTestCatalogRepo(t)

	mock.ExpectExec("INSERT INTO notes_catalog").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("INSERT INTO notes_catalog").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectExec("INSERT INTO notes_catalog").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), models.NoteMetadata{Path: "/n"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_GivesUpAfterMaxRetries(t *testing.T) {
	repo, mock := newTestCatalogRepo(t)

	for range maxRetries + 1 {
		mock.ExpectExec("INSERT INTO notes_catalog").WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	err := repo.Upsert(context.Background(), models.NoteMetadata{Path: "/n"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, pgerrcode.ConnectionFailure, pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_NonRetryableFailsFast(t *testing.T) {
	repo, mock := newTestCatalogRepo(t)

	mock.ExpectExec("INSERT INTO notes_catalog").WillReturnError(pgError(pgerrcode.UndefinedTable))

	err := repo.Upsert(context.Background(), models.NoteMetadata{Path: "/n"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkOpened(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestCatalogRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE notes_catalog SET last_opened_at = $1 WHERE path = $2")).
			WithArgs(at, "/n").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.MarkOpened(context.Background(), "/n", at))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestCatalogRepo(t)
		mock.ExpectExec("UPDATE notes_catalog").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkOpened(context.Background(), "/missing", at)
		assert.ErrorIs(t, err, ErrCatalogEntryNotFound)
	})
}

func TestGet(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	opened := created.Add(time.Hour)

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestCatalogRepo(t)
		rows := sqlmock.NewRows(selectColumns).AddRow("id-1", "/n", int64(88), created, created, opened)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, path, size_bytes, created_at, updated_at, last_opened_at FROM notes_catalog WHERE path = $1")).
			WithArgs("/n").
			WillReturnRows(rows)

		got, err := repo.Get(context.Background(), "/n")
		require.NoError(t, err)
		assert.Equal(t, "id-1", got.ID)
		assert.Equal(t, int64(88), got.SizeBytes)
		assert.Equal(t, created, got.CreatedAt)
		require.NotNil(t, got.LastOpenedAt)
		assert.Equal(t, opened, *got.LastOpenedAt)
	})

	t.Run("never opened", func(t *testing.T) {
		repo, mock := newTestCatalogRepo(t)
		rows := sqlmock.NewRows(selectColumns).AddRow("id-1", "/n", int64(1), created, created, nil)
		mock.ExpectQuery("SELECT (.+) FROM notes_catalog").WillReturnRows(rows)

		got, err := repo.Get(context.Background(), "/n")
		require.NoError(t, err)
		assert.Nil(t, got.LastOpenedAt)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestCatalogRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM notes_catalog").WillReturnRows(sqlmock.NewRows(selectColumns))

		_, err := repo.Get(context.Background(), "/n")
		assert.ErrorIs(t, err, ErrCatalogEntryNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestCatalogRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM notes_catalog").WillReturnError(errors.New("boom"))

		_, err := repo.Get(context.Background(), "/n")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestList(t *testing.T) {
	repo, mock := newTestCatalogRepo(t)

	newer := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)
	rows := sqlmock.NewRows(selectColumns).
		AddRow("id-2", "/b", int64(2), older, newer, nil).
		AddRow("id-1", "/a", int64(1), older, older, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, path, size_bytes, created_at, updated_at, last_opened_at FROM notes_catalog ORDER BY updated_at DESC, path ASC")).
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "/b", got[0].Path)
	assert.Equal(t, "/a", got[1].Path)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ScanError(t *testing.T) {
	repo, mock := newTestCatalogRepo(t)

	rows := sqlmock.NewRows([]string{"id"}).AddRow("id-1") // wrong shape → scan error
	mock.ExpectQuery("SELECT (.+) FROM notes_catalog").WillReturnRows(rows)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newTestCatalogRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notes_catalog WHERE path = $1")).
			WithArgs("/n").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), "/n"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestCatalogRepo(t)
		mock.ExpectExec("DELETE FROM notes_catalog").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), "/n"), ErrCatalogEntryNotFound)
	})
}

// TestCatalog_SQLiteRoundTrip exercises the real SQLite driver and the
// embedded migrations end to end.
func TestCatalog_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "catalog.db")

	storages, err := NewStorages(ctx, config.Catalog{DSN: dsn}, logger.Nop())
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED=0") {
		t.Skip("sqlite3 driver requires cgo")
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	catalog := storages.Catalog

	first := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	require.NoError(t, catalog.Upsert(ctx, models.NoteMetadata{Path: "/a", SizeBytes: 72, CreatedAt: first, UpdatedAt: first}))
	require.NoError(t, catalog.Upsert(ctx, models.NoteMetadata{Path: "/b", SizeBytes: 88, CreatedAt: second, UpdatedAt: second}))

	a, err := catalog.Get(ctx, "/a")
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Nil(t, a.LastOpenedAt)

	// re-saving keeps the id and creation time
	third := second.Add(time.Minute)
	require.NoError(t, catalog.Upsert(ctx, models.NoteMetadata{Path: "/a", SizeBytes: 104, UpdatedAt: third}))

	updated, err := catalog.Get(ctx, "/a")
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, int64(104), updated.SizeBytes)
	assert.True(t, first.Equal(updated.CreatedAt), "created_at changed: %v", updated.CreatedAt)

	require.NoError(t, catalog.MarkOpened(ctx, "/b", third))
	b, err := catalog.Get(ctx, "/b")
	require.NoError(t, err)
	require.NotNil(t, b.LastOpenedAt)
	assert.True(t, third.Equal(*b.LastOpenedAt))

	list, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "/a", list[0].Path, "most recently updated first")

	require.NoError(t, catalog.Delete(ctx, "/a"))
	_, err = catalog.Get(ctx, "/a")
	assert.ErrorIs(t, err, ErrCatalogEntryNotFound)
	assert.ErrorIs(t, catalog.Delete(ctx, "/a"), ErrCatalogEntryNotFound)
}

func TestNewStorages_Reopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "catalog.db")

	s1, err := NewStorages(ctx, config.Catalog{DSN: dsn}, logger.Nop())
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED=0") {
		t.Skip("sqlite3 driver requires cgo")
	}
	require.NoError(t, err)
	require.NoError(t, s1.Catalog.Upsert(ctx, models.NoteMetadata{Path: "/kept"}))
	require.NoError(t, s1.Close())

	// migrations are idempotent on an existing database
	s2, err := NewStorages(ctx, config.Catalog{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer s2.Close()

	_, err = s2.Catalog.Get(ctx, "/kept")
	assert.NoError(t, err)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}

// sql.ErrNoRows must never be reported as retryable
func TestClassifiers_NoRowsIsNotRetryable(t *testing.T) {
	assert.Equal(t, NonRetryable, NewPostgresErrorClassifier().Classify(sql.ErrNoRows))
	assert.Equal(t, NonRetryable, NewSQLiteErrorClassifier().Classify(sql.ErrNoRows))
}
