// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/mock"
	"github.com/MKhiriev/go-matjip/internal/store"
	"github.com/MKhiriev/go-matjip/models"
)

func TestRestaurantService_Get_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	restaurants := mock.NewMockRestaurantRepository(ctrl)
	svc := NewRestaurantService(restaurants, logger.Nop())
	ctx := context.Background()

	restaurants.EXPECT().Get(ctx, int64(2)).Return(models.Restaurant{ID: 2, Name: "Mapo"}, nil)

	r, err := svc.Get(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, "Mapo", r.Name)
	assert.False(t, r.IsScraped)
}

func TestRestaurantService_Get_ViewerScrap(t *testing.T) {
	ctrl := gomock.NewController(t)
	restaurants := mock.NewMockRestaurantRepository(ctrl)
	svc := NewRestaurantService(restaurants, logger.Nop())
	ctx := context.Background()

	restaurants.EXPECT().Get(ctx, int64(2)).Return(models.Restaurant{ID: 2}, nil)
	restaurants.EXPECT().IsScraped(ctx, int64(9), int64(2)).Return(true, nil)

	r, err := svc.Get(ctx, 2, 9)
	require.NoError(t, err)
	assert.True(t, r.IsScraped)
}

func TestRestaurantService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	restaurants := mock.NewMockRestaurantRepository(ctrl)
	svc := NewRestaurantService(restaurants, logger.Nop())

	restaurants.EXPECT().Get(gomock.Any(), int64(2)).Return(models.Restaurant{}, store.ErrRestaurantNotFound)

	_, err := svc.Get(context.Background(), 2, 9)
	assert.ErrorIs(t, err, store.ErrRestaurantNotFound)
}

func TestRestaurantService_ToggleScrap(t *testing.T) {
	ctrl := gomock.NewController(t)
	restaurants := mock.NewMockRestaurantRepository(ctrl)
	svc := NewRestaurantService(restaurants, logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		restaurants.EXPECT().ToggleScrap(ctx, int64(9), int64(2)).Return(true, nil),
		restaurants.EXPECT().ToggleScrap(ctx, int64(9), int64(2)).Return(false, nil),
	)

	scraped, err := svc.ToggleScrap(ctx, 9, 2)
	require.NoError(t, err)
	assert.True(t, scraped)

	scraped, err = svc.ToggleScrap(ctx, 9, 2)
	require.NoError(t, err)
	assert.False(t, scraped)
}
