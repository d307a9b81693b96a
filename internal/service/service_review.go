package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/pagination"
	"github.com/MKhiriev/go-matjip/internal/store"
	"github.com/MKhiriev/go-matjip/internal/validators"
	"github.com/MKhiriev/go-matjip/models"
)

type reviewService struct {
	reviews     store.ReviewRepository
	accounts    store.AccountRepository
	restaurants store.RestaurantRepository
	validator   validators.Validator

	byAccount    *pagination.Engine[models.ReviewSummary]
	byRestaurant *pagination.Engine[models.RestaurantReview]

	logger *logger.Logger
}

// NewReviewService returns a [ReviewService] paging pageSize reviews at a
// time.
func NewReviewService(
	reviews store.ReviewRepository,
	accounts store.AccountRepository,
	restaurants store.RestaurantRepository,
	validator validators.Validator,
	pageSize uint64,
	logger *logger.Logger,
) ReviewService {
	return &reviewService{
		reviews:      reviews,
		accounts:     accounts,
		restaurants:  restaurants,
		validator:    validator,
		byAccount:    pagination.NewEngine(pageSize, func(r models.ReviewSummary) int64 { return r.ID }),
		byRestaurant: pagination.NewEngine(pageSize, func(r models.RestaurantReview) int64 { return r.ID }),
		logger:       logger,
	}
}

// ListByAccount returns one page of the account's reviews, newest first.
// A vanished account is [store.ErrAccountNotFound]; an account without
// reviews, or a cursor past the end, is an empty page.
func (s *reviewService) ListByAccount(ctx context.Context, accountID int64, cursor pagination.Cursor) (pagination.Page[models.ReviewSummary], error) {
	if _, err := s.accounts.FindByID(ctx, accountID); err != nil {
		return pagination.Page[models.ReviewSummary]{}, err
	}

	return s.byAccount.List(ctx, cursor, func(ctx context.Context, cursor pagination.Cursor, limit uint64) ([]models.ReviewSummary, error) {
		return s.reviews.ListByAccount(ctx, accountID, cursor, limit)
	})
}

func (s *reviewService) ListByRestaurant(ctx context.Context, restaurantID int64, cursor pagination.Cursor) (pagination.Page[models.RestaurantReview], error) {
	exists, err := s.restaurants.Exists(ctx, restaurantID)
	if err != nil {
		return pagination.Page[models.RestaurantReview]{}, err
	}
	if !exists {
		return pagination.Page[models.RestaurantReview]{}, store.ErrRestaurantNotFound
	}

	return s.byRestaurant.List(ctx, cursor, func(ctx context.Context, cursor pagination.Cursor, limit uint64) ([]models.RestaurantReview, error) {
		return s.reviews.ListByRestaurant(ctx, restaurantID, cursor, limit)
	})
}

func (s *reviewService) Get(ctx context.Context, accountID, reviewID int64) (models.Review, error) {
	return s.reviews.Get(ctx, accountID, reviewID)
}

func (s *reviewService) Create(ctx context.Context, accountID, restaurantID int64, request models.ReviewContentRequest) (models.Review, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Review{}, err
	}

	review, err := s.reviews.Create(ctx, models.Review{
		AccountID:    accountID,
		RestaurantID: restaurantID,
		Content:      strings.TrimSpace(request.Content),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewService.Create").Int64("restaurant_id", restaurantID).Msg("error creating review")
		return models.Review{}, err
	}

	return review, nil
}

// Update replaces the review content. Unchanged content is
// [store.ErrNoOpUpdate].
func (s *reviewService) Update(ctx context.Context, accountID, reviewID int64, request models.ReviewContentRequest) (models.Review, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Review{}, err
	}

	return s.reviews.UpdateContent(ctx, models.Review{
		ID:        reviewID,
		AccountID: accountID,
		Content:   strings.TrimSpace(request.Content),
	})
}

func (s *reviewService) Delete(ctx context.Context, accountID, reviewID int64) error {
	return s.reviews.Delete(ctx, accountID, reviewID)
}
