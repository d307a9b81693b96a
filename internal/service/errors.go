package service

import (
	"errors"

	"github.com/MKhiriev/go-matjip/internal/app"
)

var (
	ErrWrongPassword    = app.NewError(app.KindAuth, "wrong password")
	ErrPasswordTooLong  = app.NewError(app.KindValidation, "password is too long")
	ErrIntegrity        = app.NewError(app.KindDependency, "stored credential is malformed")
	ErrTokenMissing     = app.NewError(app.KindAuth, "token is missing")
	ErrTokenInvalid     = app.NewError(app.KindAuth, "token is invalid")
	ErrTokenExpired     = app.NewError(app.KindAuth, "token is expired")
	ErrBlobStoreFailure = app.NewError(app.KindDependency, "blob store failure")

	// ErrAllocationExhausted is returned when no unique tag could be
	// reserved within the configured number of retries.
	ErrAllocationExhausted = app.NewError(app.KindConflict, "could not allocate a unique tag")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
