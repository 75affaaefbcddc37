package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/migrations"
)

// DB wraps a *sql.DB together with everything that depends on the driver
// behind it: the goose dialect, the placeholder style and the error
// classifier used to decide whether a failed statement is retried.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the catalog database named by cfg.DSN. DSNs starting
// with postgres:// or postgresql:// use the pgx driver; anything else is a
// SQLite file path.
func NewConnect(ctx context.Context, cfg config.Catalog, log *logger.Logger) (*DB, error) {
	if IsPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg.DSN, log)
	}
	return NewConnectSQLite(ctx, cfg.DSN, log)
}

// IsPostgresDSN reports whether dsn is a PostgreSQL connection URL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate applies pending schema migrations for this connection's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("catalog migration: %w", err)
	}
	return nil
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}
