// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the
// repositories. Every failure is a validation error naming the offending
// field, e.g. "username is required".
package validators

import "context"

// Validator checks a request model. When fields are given only those are
// checked; otherwise every required field of the model is.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
