// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errDuplicate = NewError(KindConflict, "username already exists")

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"direct", errDuplicate, KindConflict},
		{"wrapped", fmt.Errorf("registration failed: %w", errDuplicate), KindConflict},
		{"joined", errors.Join(errors.New("driver"), NewError(KindNotFound, "gone")), KindNotFound},
		{"plain error", errors.New("connection refused"), KindDependency},
		{"nil", nil, KindDependency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "username already exists", MessageOf(fmt.Errorf("ctx: %w", errDuplicate)))
	assert.Equal(t, MsgInternalServerError, MessageOf(errors.New("dial tcp 10.0.0.1:5432: refused")))
	assert.Equal(t, MsgInternalServerError, MessageOf(NewError(KindDependency, "s3 bucket missing")))
}

func TestErrorsIs_MatchesSentinel(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errDuplicate)
	assert.ErrorIs(t, wrapped, errDuplicate)
	assert.NotErrorIs(t, wrapped, NewError(KindConflict, "username already exists"))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
