package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-matjip/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidReviewID     = app.NewError(app.KindValidation, "invalid review id")
	ErrInvalidRestaurantID = app.NewError(app.KindValidation, "invalid restaurant id")
	ErrIconTooLarge        = app.NewError(app.KindValidation, "icon file is too large")
	ErrIconNotAnImage      = app.NewError(app.KindValidation, "icon file must be an image")
	ErrIconMissing         = missing(FieldIcon)
)

// missing reports a required request field that was absent or blank. The
// message names the field.
func missing(field string) error {
	return app.NewError(app.KindValidation, fmt.Sprintf("%s is required", field))
}
