// Package utils provides general-purpose helper utilities
// used across different parts of the application:
// type-safe context keys, JSON response writing, bearer header parsing
// and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-matjip/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the auth middleware stores the
// [models.Identity] proven by the request's bearer token.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the authenticated identity from the
// context.
//
// Returns the identity and an ok flag:
//   - ok == true:  an identity with a positive account id is present
//   - ok == false: the request is anonymous or the value has another type
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || identity.AccountID <= 0 {
		return models.Identity{}, false
	}

	return identity, true
}
