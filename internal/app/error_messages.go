// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Msg* constants are the human-readable strings written into response
// bodies. Keeping them in one place keeps the API wording consistent.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is the only message a dependency failure
	// ever surfaces to the client.
	MsgInternalServerError = "internal server error"

	// MsgRegistered confirms a successful registration.
	MsgRegistered = "account registered"

	// MsgLoggedIn confirms a successful login.
	MsgLoggedIn = "login succeeded"

	// MsgNicknameChanged confirms a nickname update.
	MsgNicknameChanged = "nickname changed"

	// MsgIconChanged confirms a profile icon upload.
	MsgIconChanged = "profile icon changed"

	// MsgReviewCreated confirms a new review.
	MsgReviewCreated = "review created"

	// MsgReviewUpdated confirms a review edit.
	MsgReviewUpdated = "review updated"

	// MsgReviewDeleted confirms a review deletion.
	MsgReviewDeleted = "review deleted"

	// MsgRouteNotFound is returned for unknown routes.
	MsgRouteNotFound = "route not found"

	// MsgMethodNotAllowed is returned when the route exists but the method
	// does not.
	MsgMethodNotAllowed = "method not allowed"
)
