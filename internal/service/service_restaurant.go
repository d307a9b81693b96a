package service

import (
	"context"

	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/store"
	"github.com/MKhiriev/go-matjip/models"
)

type restaurantService struct {
	restaurants store.RestaurantRepository
	logger      *logger.Logger
}

func NewRestaurantService(restaurants store.RestaurantRepository, logger *logger.Logger) RestaurantService {
	return &restaurantService{
		restaurants: restaurants,
		logger:      logger,
	}
}

func (s *restaurantService) Get(ctx context.Context, restaurantID, viewerID int64) (models.Restaurant, error) {
	restaurant, err := s.restaurants.Get(ctx, restaurantID)
	if err != nil {
		return models.Restaurant{}, err
	}

	if viewerID <= 0 {
		return restaurant, nil
	}

	if restaurant.IsScraped, err = s.restaurants.IsScraped(ctx, viewerID, restaurantID); err != nil {
		return models.Restaurant{}, err
	}

	return restaurant, nil
}

func (s *restaurantService) ToggleScrap(ctx context.Context, accountID, restaurantID int64) (bool, error) {
	scraped, err := s.restaurants.ToggleScrap(ctx, accountID, restaurantID)
	if err != nil {
		return false, err
	}

	logger.FromContext(ctx).Debug().
		Int64("account_id", accountID).
		Int64("restaurant_id", restaurantID).
		Bool("scraped", scraped).
		Msg("scrap toggled")

	return scraped, nil
}
