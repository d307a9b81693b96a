package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-matjip/internal/pagination"
	"github.com/MKhiriev/go-matjip/internal/utils"
	"github.com/MKhiriev/go-matjip/models"
)

// idParam parses the positive integer path parameter name, returning
// invalid when it is malformed.
func idParam(r *http.Request, name string, invalid error) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid
	}
	return id, nil
}

func cursorParam(r *http.Request) (pagination.Cursor, error) {
	return pagination.ParseCursor(r.URL.Query().Get("cursor"))
}

// writePage writes one page of reviews. lastCursor is null on the last page
// and reviews is [] rather than null when the page is empty.
func writePage[T any](w http.ResponseWriter, page pagination.Page[T]) {
	items := page.Items
	if items == nil {
		items = []T{}
	}

	utils.WriteJSON(w, models.ReviewPage[T]{
		Success:    true,
		Reviews:    items,
		LastCursor: page.LastCursor(),
	}, http.StatusOK)
}
