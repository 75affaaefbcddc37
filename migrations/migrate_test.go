// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // goose issues its own queries, none are expected

	err = Migrate(db, DialectPostgres)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "migration error"), "got: %v", err)
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectSQLite)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle-ish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting dialect")
}

func TestEmbeddedMigrations(t *testing.T) {
	data, err := embedMigrations.ReadFile("00001_create_notes_catalog.sql")
	require.NoError(t, err)

	sqlText := string(data)
	assert.Contains(t, sqlText, "-- +goose Up")
	assert.Contains(t, sqlText, "-- +goose Down")
	assert.Contains(t, sqlText, "notes_catalog")
	assert.NotContains(t, strings.ToLower(sqlText), "password", "catalog must never store secrets")
}
