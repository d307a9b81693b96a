package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-matjip/internal/logger"
)

// bcryptHasher hashes passwords with bcrypt at a fixed cost. Digests carry
// their own salt and cost, so changing the cost only affects new hashes.
type bcryptHasher struct {
	cost   int
	logger *logger.Logger
}

// NewPasswordHasher returns a bcrypt [PasswordHasher]. A cost outside
// bcrypt's range falls back to [bcrypt.DefaultCost].
func NewPasswordHasher(cost int, logger *logger.Logger) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{
		cost:   cost,
		logger: logger,
	}
}

func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bcryptHasher.Hash").Msg("error hashing password")
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether password matches digest. A mismatch is (false,
// nil); a digest bcrypt cannot parse is [ErrIntegrity].
func (h *bcryptHasher) Verify(ctx context.Context, password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*bcryptHasher.Verify").Msg("stored digest is malformed")
		return false, fmt.Errorf("%w: %w", ErrIntegrity, err)
	}
}
