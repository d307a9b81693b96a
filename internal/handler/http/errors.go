// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "github.com/MKhiriev/go-matjip/internal/app"

var (
	// ErrInvalidBody is returned when a request body is not the expected
	// JSON or multipart form.
	ErrInvalidBody = app.NewError(app.KindValidation, app.MsgInvalidDataProvided)

	ErrRouteNotFound = app.NewError(app.KindNotFound, app.MsgRouteNotFound)
)
