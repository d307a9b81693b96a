//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-matjip/internal/pagination"
	"github.com/MKhiriev/go-matjip/models"
)

// PasswordHasher is the credential hasher. A digest that cannot be parsed
// is an integrity failure, distinct from a mismatch.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, digest string) (bool, error)
}

// TagAllocator reserves account tags.
type TagAllocator interface {
	// Allocate hands reserved tags to claim until it accepts one. A claim
	// error wrapping store.ErrTagTaken or store.ErrTransient asks for
	// another tag.
	Allocate(ctx context.Context, claim func(ctx context.Context, tag models.Tag) error) (models.Tag, error)
}

// TokenService issues and validates stateless session tokens.
type TokenService interface {
	Issue(ctx context.Context, identity models.Identity) (models.SessionToken, error)
	Validate(ctx context.Context, rawToken string) (models.Identity, error)
}

// AccountService covers registration, login and profile management.
type AccountService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.Account, error)
	Login(ctx context.Context, request models.LoginRequest) (models.SessionToken, error)
	Me(ctx context.Context, accountID int64) (models.Profile, error)
	ChangeNickname(ctx context.Context, accountID int64, request models.NicknameRequest) error
	ChangeIcon(ctx context.Context, accountID int64, icon models.Icon) (string, error)
}

// ReviewService lists and manages reviews.
type ReviewService interface {
	ListByAccount(ctx context.Context, accountID int64, cursor pagination.Cursor) (pagination.Page[models.ReviewSummary], error)
	ListByRestaurant(ctx context.Context, restaurantID int64, cursor pagination.Cursor) (pagination.Page[models.RestaurantReview], error)
	Get(ctx context.Context, accountID, reviewID int64) (models.Review, error)
	Create(ctx context.Context, accountID, restaurantID int64, request models.ReviewContentRequest) (models.Review, error)
	Update(ctx context.Context, accountID, reviewID int64, request models.ReviewContentRequest) (models.Review, error)
	Delete(ctx context.Context, accountID, reviewID int64) error
}

// RestaurantService reads restaurants and toggles scraps.
type RestaurantService interface {
	// Get returns the restaurant as seen by viewerID. A zero viewerID is an
	// anonymous viewer.
	Get(ctx context.Context, restaurantID, viewerID int64) (models.Restaurant, error)
	ToggleScrap(ctx context.Context, accountID, restaurantID int64) (bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
