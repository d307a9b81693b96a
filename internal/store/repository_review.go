package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/pagination"
	"github.com/MKhiriev/go-matjip/models"
)

type reviewRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewReviewRepository constructs a [ReviewRepository] backed by db.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// ListByAccount returns up to limit reviews written by accountID with an id
// below cursor, each joined with its restaurant name and first label.
func (r *reviewRepository) ListByAccount(ctx context.Context, accountID int64, cursor pagination.Cursor, limit uint64) ([]models.ReviewSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAccountReviewsQuery(r.db.builder(), accountID, cursor, limit)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListByAccount").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListByAccount").Int64("account_id", accountID).Msg("error listing reviews")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	reviews := make([]models.ReviewSummary, 0, limit)
	for rows.Next() {
		var review models.ReviewSummary
		if err = rows.Scan(
			&review.ID,
			&review.RestaurantID,
			&review.RestaurantName,
			&review.Content,
			&review.CreatedAt,
			&review.Label,
		); err != nil {
			log.Err(err).Str("func", "*reviewRepository.ListByAccount").Msg("error scanning review")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListByAccount").Msg("error iterating reviews")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}

// ListByRestaurant returns up to limit reviews of restaurantID with an id
// below cursor, each with its author's nickname and tag.
func (r *reviewRepository) ListByRestaurant(ctx context.Context, restaurantID int64, cursor pagination.Cursor, limit uint64) ([]models.RestaurantReview, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRestaurantReviewsQuery(r.db.builder(), restaurantID, cursor, limit)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListByRestaurant").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListByRestaurant").Int64("restaurant_id", restaurantID).Msg("error listing reviews")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	reviews := make([]models.RestaurantReview, 0, limit)
	for rows.Next() {
		var review models.RestaurantReview
		if err = rows.Scan(
			&review.ID,
			&review.Content,
			&review.CreatedAt,
			&review.Nickname,
			&review.Tag,
		); err != nil {
			log.Err(err).Str("func", "*reviewRepository.ListByRestaurant").Msg("error scanning review")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListByRestaurant").Msg("error iterating reviews")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reviews, nil
}

func (r *reviewRepository) Get(ctx context.Context, accountID, reviewID int64) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetReviewQuery(r.db.builder(), accountID, reviewID)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.Get").Msg("error building query")
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var review models.Review
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&review.ID,
		&review.AccountID,
		&review.RestaurantID,
		&review.Content,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, ErrReviewNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.Get").Int64("review_id", reviewID).Msg("error getting review")
		return models.Review{}, r.db.classify(err, ErrExecutingQuery)
	}

	return review, nil
}

// Create stores a new review. A missing restaurant surfaces as
// [ErrRestaurantNotFound].
func (r *reviewRepository) Create(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	exists, err := r.restaurantExists(ctx, review.RestaurantID)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.Create").Msg("error checking restaurant")
		return models.Review{}, err
	}
	if !exists {
		return models.Review{}, ErrRestaurantNotFound
	}

	now := r.now().UTC()
	review.CreatedAt, review.UpdatedAt = now, now

	query, args, err := buildCreateReviewQuery(r.db.builder(), review)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.Create").Msg("error building query")
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&review.ID); err != nil {
		log.Err(err).Str("func", "*reviewRepository.Create").Int64("restaurant_id", review.RestaurantID).Msg("error creating review")
		return models.Review{}, r.db.classify(err, ErrExecutingQuery)
	}

	return review, nil
}

// UpdateContent replaces the review content and bumps updated_at.
func (r *reviewRepository) UpdateContent(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	review.UpdatedAt = r.now().UTC()

	query, args, err := buildUpdateReviewQuery(r.db.builder(), review)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.UpdateContent").Msg("error building query")
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.UpdateContent").Int64("review_id", review.ID).Msg("error updating review")
		return models.Review{}, r.db.classify(err, ErrExecutingQuery)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected > 0 {
		return review, nil
	}

	// nothing changed: missing review or identical content
	if _, err = r.Get(ctx, review.AccountID, review.ID); err != nil {
		return models.Review{}, err
	}

	return models.Review{}, ErrNoOpUpdate
}

func (r *reviewRepository) Delete(ctx context.Context, accountID, reviewID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteReviewQuery(r.db.builder(), accountID, reviewID)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.Delete").Int64("review_id", reviewID).Msg("error deleting review")
		return r.db.classify(err, ErrExecutingQuery)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) restaurantExists(ctx context.Context, id int64) (bool, error) {
	query, args, err := buildRestaurantExistsQuery(r.db.builder(), id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryExists(ctx, r.db, query, args...)
}

