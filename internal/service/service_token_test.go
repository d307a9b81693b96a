// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/models"
)

const testSignKey = "test-sign-key"

// newClockedTokenService returns a token service reading the time from *now.
func newClockedTokenService(now *time.Time) *jwtTokenService {
	s := NewTokenService(testSignKey, "matjip", logger.Nop()).(*jwtTokenService)
	s.now = func() time.Time { return *now }
	return s
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newClockedTokenService(&now)
	ctx := context.Background()

	token, err := s.Issue(ctx, models.Identity{AccountID: 42, Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, now.Add(time.Hour).Unix(), token.Claims.ExpiresAt.Unix())
	assert.Equal(t, "42", token.Claims.Subject)

	identity, err := s.Validate(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{AccountID: 42, Username: "alice"}, identity)
}

// ── Expiry ───────────────────────────────────────────────────────────────────

func TestTokenService_Expiry(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr error
	}{
		{"fresh", 0, nil},
		{"59 minutes later", 59 * time.Minute, nil},
		{"exactly one hour later", time.Hour, ErrTokenExpired},
		{"61 minutes later", 61 * time.Minute, ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := issued
			s := newClockedTokenService(&now)

			token, err := s.Issue(context.Background(), models.Identity{AccountID: 1, Username: "bob"})
			require.NoError(t, err)

			now = issued.Add(tt.elapsed)
			_, err = s.Validate(context.Background(), token.SignedString)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Rejections ───────────────────────────────────────────────────────────────

func TestTokenService_Missing(t *testing.T) {
	now := time.Now()
	_, err := newClockedTokenService(&now).Validate(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestTokenService_Tampered(t *testing.T) {
	now := time.Now()
	s := newClockedTokenService(&now)

	token, err := s.Issue(context.Background(), models.Identity{AccountID: 7, Username: "eve"})
	require.NoError(t, err)

	raw := []byte(token.SignedString)
	last := len(raw) - 2
	if raw[last] == 'A' {
		raw[last] = 'B'
	} else {
		raw[last] = 'A'
	}

	_, err = s.Validate(context.Background(), string(raw))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Garbage(t *testing.T) {
	now := time.Now()
	_, err := newClockedTokenService(&now).Validate(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_ForeignKeyOrIssuer(t *testing.T) {
	now := time.Now()
	s := newClockedTokenService(&now)

	tests := []struct {
		name   string
		key    string
		issuer string
	}{
		{"other key", "other-key", "matjip"},
		{"other issuer", testSignKey, "someone-else"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := models.Claims{
				Username: "mallory",
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    tt.issuer,
					Subject:   "1",
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				},
			}
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tt.key))
			require.NoError(t, err)

			_, err = s.Validate(context.Background(), signed)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestTokenService_BadSubject(t *testing.T) {
	now := time.Now()
	s := newClockedTokenService(&now)

	for _, sub := range []string{"abc", "0", "-3"} {
		claims := models.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "matjip",
				Subject:   sub,
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
		require.NoError(t, err)

		_, err = s.Validate(context.Background(), signed)
		assert.ErrorIs(t, err, ErrTokenInvalid, sub)
	}
}

func TestTokenService_NoExpiry(t *testing.T) {
	now := time.Now()
	s := newClockedTokenService(&now)

	claims := models.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "matjip", Subject: "1"}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = s.Validate(context.Background(), signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
