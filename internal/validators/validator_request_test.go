// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-matjip/internal/app"
	"github.com/MKhiriev/go-matjip/models"
)

func TestRequestValidator_Register(t *testing.T) {
	v := NewRequestValidator(0)
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.RegisterRequest
		wantMsg string
	}{
		{"valid", models.RegisterRequest{Username: "abc", Password: "pw1", Nickname: "Ann"}, ""},
		{"missing username", models.RegisterRequest{Password: "pw1", Nickname: "Ann"}, "username is required"},
		{"blank password", models.RegisterRequest{Username: "abc", Password: "  ", Nickname: "Ann"}, "password is required"},
		{"missing nickname", models.RegisterRequest{Username: "abc", Password: "pw1"}, "nickname is required"},
		{"everything missing reports username first", models.RegisterRequest{}, "username is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, app.KindValidation, app.KindOf(err))
		})
	}
}

func TestRequestValidator_Pointers(t *testing.T) {
	v := NewRequestValidator(0)
	ctx := context.Background()

	assert.EqualError(t, v.Validate(ctx, &models.LoginRequest{Username: "abc"}), "password is required")
	assert.EqualError(t, v.Validate(ctx, &models.NicknameRequest{}), "nickname is required")
	assert.EqualError(t, v.Validate(ctx, &models.ReviewContentRequest{Content: "\n"}), "content is required")
	assert.NoError(t, v.Validate(ctx, &models.ReviewContentRequest{Content: "great"}))
}

func TestRequestValidator_FieldSubset(t *testing.T) {
	v := NewRequestValidator(0)

	err := v.Validate(context.Background(), models.RegisterRequest{Username: "abc"}, FieldUsername)
	assert.NoError(t, err)

	err = v.Validate(context.Background(), models.RegisterRequest{Username: "abc"}, "email")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRequestValidator_Icon(t *testing.T) {
	v := NewRequestValidator(64)
	ctx := context.Background()

	assert.EqualError(t, v.Validate(ctx, (*models.Icon)(nil)), "icon is required")
	assert.EqualError(t, v.Validate(ctx, models.Icon{}), "icon is required")
	assert.ErrorIs(t, v.Validate(ctx, models.Icon{Body: append([]byte(pngMagic), make([]byte, 64)...)}), ErrIconTooLarge)
	assert.NoError(t, v.Validate(ctx, models.Icon{Body: []byte(pngMagic)}))
	assert.NoError(t, v.Validate(ctx, &models.Icon{Body: []byte(gifMagic)}))
}

const (
	pngMagic  = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"
	gifMagic  = "GIF89a\x01\x00\x01\x00"
	jpegMagic = "\xff\xd8\xff\xe0\x00\x10JFIF"
	webpMagic = "RIFF\x00\x00\x00\x00WEBPVP8 "
)

func TestIconType(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		ext         string
		ok          bool
	}{
		{name: "png", body: pngMagic, contentType: "image/png", ext: ".png", ok: true},
		{name: "gif", body: gifMagic, contentType: "image/gif", ext: ".gif", ok: true},
		{name: "jpeg", body: jpegMagic, contentType: "image/jpeg", ext: ".jpg", ok: true},
		{name: "webp", body: webpMagic, contentType: "image/webp", ext: ".webp", ok: true},
		{name: "html", body: "<html><script>alert(1)</script></html>"},
		{name: "svg", body: `<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`},
		{name: "text", body: "hello"},
		{name: "bmp", body: "BM\x00\x00\x00\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentType, ext, ok := IconType([]byte(tt.body))
			assert.Equal(t, tt.ok, ok, contentType)
			if !tt.ok {
				assert.ErrorIs(t, NewRequestValidator(0).Validate(context.Background(), models.Icon{Body: []byte(tt.body)}), ErrIconNotAnImage)
				return
			}
			assert.Equal(t, tt.contentType, contentType)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewRequestValidator(0).Validate(context.Background(), 42), ErrUnsupportedType)
}
