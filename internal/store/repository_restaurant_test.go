// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-matjip/internal/logger"
)

func newTestRestaurantRepo(t *testing.T) (*restaurantRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewRestaurantRepository(db, logger.Nop()).(*restaurantRepository), mock
}

func TestRestaurantRepository_ToggleScrap(t *testing.T) {
	const exists = "SELECT 1 FROM restaurants WHERE id = $1"
	const del = "DELETE FROM scraps WHERE account_id = $1 AND restaurant_id = $2"
	const ins = "INSERT INTO scraps (account_id,restaurant_id,created_at) VALUES ($1,$2,$3)"

	t.Run("removes existing scrap", func(t *testing.T) {
		repo, mock := newTestRestaurantRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(exists)).WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(del)).WithArgs(int64(1), int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		scraped, err := repo.ToggleScrap(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.False(t, scraped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("creates missing scrap", func(t *testing.T) {
		repo, mock := newTestRestaurantRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(exists)).WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(del)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(ins)).WithArgs(int64(1), int64(2), sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		scraped, err := repo.ToggleScrap(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.True(t, scraped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent insert counts as scraped", func(t *testing.T) {
		repo, mock := newTestRestaurantRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(exists)).WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(del)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(ins)).WillReturnError(pgUniqueError("scraps_pkey"))
		mock.ExpectRollback()

		scraped, err := repo.ToggleScrap(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.True(t, scraped)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		repo, mock := newTestRestaurantRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(exists)).WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

		_, err := repo.ToggleScrap(context.Background(), 1, 2)
		assert.ErrorIs(t, err, ErrRestaurantNotFound)
	})
}
