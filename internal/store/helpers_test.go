// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-matjip/internal/config"
	"github.com/MKhiriev/go-matjip/internal/logger"
)

// newMockDB returns a PostgreSQL-flavoured *DB backed by sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

// newSQLiteDB opens a migrated SQLite database in a temporary directory.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "matjip.db")

	db, err := NewConnect(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))

	return db
}

func pgUniqueError(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// seedRestaurant inserts a restaurant with the given labels and returns its id.
func seedRestaurant(t *testing.T, db *DB, name string, labels ...string) int64 {
	t.Helper()

	ctx := context.Background()
	res, err := db.ExecContext(ctx, `INSERT INTO restaurants (name, address, hours, phone) VALUES (?, 'addr', '9-21', '010')`, name)
	require.NoError(t, err)

	id, err := res.LastInsertId()
	require.NoError(t, err)

	for _, label := range labels {
		_, err = db.ExecContext(ctx, `INSERT INTO restaurant_labels (restaurant_id, label) VALUES (?, ?)`, id, label)
		require.NoError(t, err)
	}

	return id
}

func configDB(dsn string) config.DB {
	return config.DB{DSN: dsn}
}
