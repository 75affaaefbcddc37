// Package migrations embeds the catalog schema and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Supported goose dialects.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// ErrNilDB is returned by [Migrate] when no connection is supplied.
var ErrNilDB = errors.New("db is nil")

// Migrate applies every pending migration to db using the given goose
// dialect ([DialectPostgres] or [DialectSQLite]).
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
