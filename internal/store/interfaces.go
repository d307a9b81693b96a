//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-matjip/internal/pagination"
	"github.com/MKhiriev/go-matjip/models"
)

// AccountRepository is the authoritative store of accounts.
type AccountRepository interface {
	// FindByUsername returns ErrAccountNotFound when no account matches.
	FindByUsername(ctx context.Context, username string) (models.Account, error)
	// FindByID returns ErrAccountNotFound when no account matches.
	FindByID(ctx context.Context, id int64) (models.Account, error)
	// Create inserts the account and returns it with its id. A taken
	// username fails with ErrDuplicateUsername, a taken tag with ErrTagTaken.
	Create(ctx context.Context, account models.Account) (models.Account, error)
	// UpdateNickname fails with ErrNoOpUpdate when nickname equals the stored
	// one and with ErrAccountNotFound when the account does not exist.
	UpdateNickname(ctx context.Context, id int64, nickname string) error
	// UpdateIcon fails with ErrAccountNotFound when the account does not exist.
	UpdateIcon(ctx context.Context, id int64, iconURL string) error
}

// TagSequence hands out account tags from a storage-side counter. Values are
// never handed out twice, even when the transaction using them fails.
type TagSequence interface {
	Next(ctx context.Context) (models.Tag, error)
}

// ReviewRepository stores reviews.
type ReviewRepository interface {
	// ListByAccount returns one page of the account's reviews, newest first.
	ListByAccount(ctx context.Context, accountID int64, cursor pagination.Cursor, limit uint64) ([]models.ReviewSummary, error)
	// ListByRestaurant returns one page of the restaurant's reviews, newest first.
	ListByRestaurant(ctx context.Context, restaurantID int64, cursor pagination.Cursor, limit uint64) ([]models.RestaurantReview, error)
	// Get returns ErrReviewNotFound unless the review exists and belongs to
	// accountID.
	Get(ctx context.Context, accountID, reviewID int64) (models.Review, error)
	Create(ctx context.Context, review models.Review) (models.Review, error)
	// UpdateContent fails with ErrNoOpUpdate when content is unchanged and
	// with ErrReviewNotFound when the review is missing or not owned.
	UpdateContent(ctx context.Context, review models.Review) (models.Review, error)
	// Delete returns ErrReviewNotFound when nothing was deleted.
	Delete(ctx context.Context, accountID, reviewID int64) error
}

// RestaurantRepository reads restaurants and manages scraps.
type RestaurantRepository interface {
	// Get returns the restaurant with labels and menu, or
	// ErrRestaurantNotFound.
	Get(ctx context.Context, id int64) (models.Restaurant, error)
	Exists(ctx context.Context, id int64) (bool, error)
	IsScraped(ctx context.Context, accountID, restaurantID int64) (bool, error)
	// ToggleScrap flips the scrap in one transaction and returns the new
	// state.
	ToggleScrap(ctx context.Context, accountID, restaurantID int64) (bool, error)
}

// BlobStore keeps uploaded binaries and returns the public URL they are
// reachable at.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// UniqueViolation reports the violated constraint of a uniqueness
	// error. The second value is false for any other error.
	UniqueViolation(err error) (string, bool)
}
