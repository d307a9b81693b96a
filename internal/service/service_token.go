package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/models"
)

// TokenLifetime is how long an issued session token stays valid.
const TokenLifetime = time.Hour

// jwtTokenService issues HS256-signed JWTs. Validation depends only on the
// token, the signing key and the clock, so there is no way to revoke a
// token before it expires.
type jwtTokenService struct {
	signKey []byte
	issuer  string
	now     func() time.Time
	logger  *logger.Logger
}

// NewTokenService returns a [TokenService] signing with signKey.
func NewTokenService(signKey, issuer string, logger *logger.Logger) TokenService {
	return &jwtTokenService{
		signKey: []byte(signKey),
		issuer:  issuer,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *jwtTokenService) Issue(ctx context.Context, identity models.Identity) (models.SessionToken, error) {
	now := s.now()
	claims := models.Claims{
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(identity.AccountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jwtTokenService.Issue").Msg("error signing token")
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.SessionToken{Claims: claims, SignedString: signed}, nil
}

// Validate checks the signature, issuer and expiry of rawToken.
//
// Errors:
//   - empty rawToken → [ErrTokenMissing].
//   - now at or past "exp" → [ErrTokenExpired].
//   - anything else wrong → [ErrTokenInvalid].
func (s *jwtTokenService) Validate(ctx context.Context, rawToken string) (models.Identity, error) {
	if rawToken == "" {
		return models.Identity{}, ErrTokenMissing
	}

	var claims models.Claims
	_, err := jwt.ParseWithClaims(rawToken, &claims,
		func(*jwt.Token) (any, error) { return s.signKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Identity{}, ErrTokenExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*jwtTokenService.Validate").Msg("rejected token")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	accountID, err := claims.AccountID()
	if err != nil || accountID <= 0 {
		return models.Identity{}, ErrTokenInvalid
	}

	return models.Identity{AccountID: accountID, Username: claims.Username}, nil
}
