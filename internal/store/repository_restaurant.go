package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/models"
)

// errScrapRaced aborts the toggle transaction when another request created
// the same scrap first.
var errScrapRaced = errors.New("scrap created concurrently")

type restaurantRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewRestaurantRepository constructs a [RestaurantRepository] backed by db.
func NewRestaurantRepository(db *DB, logger *logger.Logger) RestaurantRepository {
	logger.Debug().Msg("creating restaurant repository")
	return &restaurantRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Get loads the restaurant row, then its labels and menu in storage order.
func (r *restaurantRepository) Get(ctx context.Context, id int64) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRestaurantQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.Get").Msg("error building query")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var restaurant models.Restaurant
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Address,
		&restaurant.Hours,
		&restaurant.Phone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.Get").Int64("restaurant_id", id).Msg("error getting restaurant")
		return models.Restaurant{}, r.db.classify(err, ErrExecutingQuery)
	}

	if restaurant.Labels, err = r.labels(ctx, id); err != nil {
		log.Err(err).Str("func", "*restaurantRepository.Get").Int64("restaurant_id", id).Msg("error getting labels")
		return models.Restaurant{}, err
	}

	if restaurant.Menu, err = r.menu(ctx, id); err != nil {
		log.Err(err).Str("func", "*restaurantRepository.Get").Int64("restaurant_id", id).Msg("error getting menu")
		return models.Restaurant{}, err
	}

	return restaurant, nil
}

func (r *restaurantRepository) labels(ctx context.Context, id int64) ([]string, error) {
	query, args, err := buildRestaurantLabelsQuery(r.db.builder(), id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	labels := make([]string, 0)
	for rows.Next() {
		var label string
		if err = rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		labels = append(labels, label)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return labels, nil
}

func (r *restaurantRepository) menu(ctx context.Context, id int64) ([]models.MenuItem, error) {
	query, args, err := buildRestaurantMenuQuery(r.db.builder(), id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	menu := make([]models.MenuItem, 0)
	for rows.Next() {
		var item models.MenuItem
		if err = rows.Scan(&item.Name, &item.Price, &item.PhotoURL); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		menu = append(menu, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return menu, nil
}

func (r *restaurantRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query, args, err := buildRestaurantExistsQuery(r.db.builder(), id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	exists, err := queryExists(ctx, r.db, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restaurantRepository.Exists").Int64("restaurant_id", id).Msg("error checking restaurant")
		return false, err
	}

	return exists, nil
}

func (r *restaurantRepository) IsScraped(ctx context.Context, accountID, restaurantID int64) (bool, error) {
	query, args, err := buildIsScrapedQuery(r.db.builder(), accountID, restaurantID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	scraped, err := queryExists(ctx, r.db, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*restaurantRepository.IsScraped").Msg("error checking scrap")
		return false, err
	}

	return scraped, nil
}

// ToggleScrap removes the scrap if it exists and creates it otherwise.
// A concurrent insert of the same scrap counts as scraped.
func (r *restaurantRepository) ToggleScrap(ctx context.Context, accountID, restaurantID int64) (bool, error) {
	log := logger.FromContext(ctx)

	exists, err := r.Exists(ctx, restaurantID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrRestaurantNotFound
	}

	b := r.db.builder()
	scraped := false
	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildDeleteScrapQuery(b, accountID, restaurantID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return r.db.classify(err, ErrExecutingQuery)
		}

		deleted, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if deleted > 0 {
			return nil
		}

		query, args, err = buildInsertScrapQuery(b, accountID, restaurantID, r.now().UTC())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if _, unique := r.db.errorClassificator.UniqueViolation(err); unique {
				return errScrapRaced
			}
			return r.db.classify(err, ErrExecutingQuery)
		}
		scraped = true

		return nil
	})
	if errors.Is(err, errScrapRaced) {
		return true, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "*restaurantRepository.ToggleScrap").
			Int64("account_id", accountID).
			Int64("restaurant_id", restaurantID).
			Msg("error toggling scrap")
		return false, err
	}

	return scraped, nil
}
