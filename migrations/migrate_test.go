// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-matjip/internal/logger"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file:"+filepath.Join(t.TempDir(), "matjip.db")+"?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestUp_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.MatchExpectationsInOrder(false)

	err = Up(context.Background(), db, goose.DialectSQLite3, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestUp_NilDB(t *testing.T) {
	err := Up(context.Background(), nil, goose.DialectPostgres, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestUp_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Up(context.Background(), db, goose.DialectMySQL, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestUp_SQLite(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	require.NoError(t, Up(ctx, db, goose.DialectSQLite3, logger.Nop()))

	for _, table := range []string{"accounts", "tag_sequence", "restaurants", "restaurant_labels", "menus", "reviews", "scraps"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	var value int64
	require.NoError(t, db.QueryRowContext(ctx, "SELECT value FROM tag_sequence WHERE id = 1").Scan(&value))
	assert.Zero(t, value)

	// a second run is a no-op
	require.NoError(t, Up(ctx, db, goose.DialectSQLite3, logger.Nop()))
}

func TestEmbeddedMigrations_BothDialectsInStep(t *testing.T) {
	pg, err := filepath.Glob("postgres/*.sql")
	require.NoError(t, err)
	lite, err := filepath.Glob("sqlite/*.sql")
	require.NoError(t, err)

	require.NotEmpty(t, pg)
	require.Len(t, lite, len(pg))
	for i := range pg {
		assert.Equal(t, filepath.Base(pg[i]), filepath.Base(lite[i]))
	}
}
