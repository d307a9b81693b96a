package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token.
//
// The account identifier travels in the standard "sub" claim; Username is a
// private claim. Issue and expiry times use the registered "iat" and "exp".
type Claims struct {
	Username string `json:"username"`

	jwt.RegisteredClaims
}

// AccountID parses the "sub" claim as a base-10 int64.
func (c Claims) AccountID() (int64, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting account ID from token: %w", err)
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting account ID from token to int64: %w", err)
	}

	return id, nil
}

// Identity is what a validated session token proves about its bearer.
type Identity struct {
	AccountID int64
	Username  string
}

// SessionToken is an issued, signed bearer token.
type SessionToken struct {
	// Claims holds the decoded payload.
	Claims Claims

	// SignedString is the compact JWS form (header.payload.signature)
	// handed to the client.
	SignedString string
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t SessionToken) String() string {
	return t.SignedString
}
