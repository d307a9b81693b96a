package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-matjip/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldNickname = "nickname"
	FieldContent  = "content"
	FieldIcon     = "icon"
)

// RequestValidator checks incoming API requests. Fields are checked in
// declaration order and the first failure is returned.
type RequestValidator struct {
	maxIconSize int64
}

// NewRequestValidator returns a [Validator] for request bodies. Icons larger
// than maxIconSize bytes are rejected; zero disables the size check.
func NewRequestValidator(maxIconSize int64) Validator {
	return &RequestValidator{maxIconSize: maxIconSize}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.NicknameRequest:
		return requireFields(fields, []string{FieldNickname}, map[string]string{FieldNickname: value.Nickname})
	case *models.NicknameRequest:
		return requireFields(fields, []string{FieldNickname}, map[string]string{FieldNickname: value.Nickname})

	case models.ReviewContentRequest:
		return requireFields(fields, []string{FieldContent}, map[string]string{FieldContent: value.Content})
	case *models.ReviewContentRequest:
		return requireFields(fields, []string{FieldContent}, map[string]string{FieldContent: value.Content})

	case models.Icon:
		return v.validateIcon(value)
	case *models.Icon:
		if value == nil {
			return ErrIconMissing
		}
		return v.validateIcon(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(request models.RegisterRequest, fields ...string) error {
	return requireFields(fields, []string{FieldUsername, FieldPassword, FieldNickname}, map[string]string{
		FieldUsername: request.Username,
		FieldPassword: request.Password,
		FieldNickname: request.Nickname,
	})
}

func (v *RequestValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	return requireFields(fields, []string{FieldUsername, FieldPassword}, map[string]string{
		FieldUsername: request.Username,
		FieldPassword: request.Password,
	})
}

func (v *RequestValidator) validateIcon(icon models.Icon) error {
	if len(icon.Body) == 0 {
		return ErrIconMissing
	}
	if v.maxIconSize > 0 && int64(len(icon.Body)) > v.maxIconSize {
		return ErrIconTooLarge
	}
	if _, _, ok := IconType(icon.Body); !ok {
		return ErrIconNotAnImage
	}

	return nil
}

// requireFields checks that every requested field holds a non-blank value.
// An empty fields list means all of defaults.
func requireFields(fields, defaults []string, values map[string]string) error {
	if len(fields) == 0 {
		fields = defaults
	}

	for _, f := range fields {
		value, ok := values[f]
		if !ok {
			return ErrUnknownField
		}
		if strings.TrimSpace(value) == "" {
			return missing(f)
		}
	}

	return nil
}
