// Package pagination implements keyset pagination over rows with
// monotonically assigned integer identifiers, newest first.
//
// A page is the rows with key < cursor ordered by key descending, limited to
// the page size. The next cursor is the key of the last row of a full page
// and nil after a short page, which tells the caller to stop.
package pagination

import (
	"strconv"

	"github.com/MKhiriev/go-matjip/internal/app"
)

// ErrInvalidCursor is returned for a cursor that is not a non-negative
// integer.
var ErrInvalidCursor = app.NewError(app.KindValidation, "cursor must be a non-negative integer")

// Cursor is the exclusive upper bound of the next page. Clients must treat
// it as opaque.
type Cursor int64

// Start is the cursor of the first page.
const Start Cursor = 0

// ParseCursor parses a cursor from a query parameter. An empty string and
// "0" both mean [Start].
func ParseCursor(raw string) (Cursor, error) {
	if raw == "" {
		return Start, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return Start, ErrInvalidCursor
	}

	return Cursor(v), nil
}

// IsStart reports whether c addresses the first page.
func (c Cursor) IsStart() bool {
	return c == Start
}

func (c Cursor) String() string {
	return strconv.FormatInt(int64(c), 10)
}
