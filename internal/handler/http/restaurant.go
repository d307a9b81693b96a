package http

import (
	"net/http"

	"github.com/MKhiriev/go-matjip/internal/utils"
	"github.com/MKhiriev/go-matjip/internal/validators"
	"github.com/MKhiriev/go-matjip/models"
)

// getRestaurant answers with the bare restaurant object. Anonymous viewers
// always see isScraped=false.
func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := idParam(r, restaurantIDParam, validators.ErrInvalidRestaurantID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var viewerID int64
	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		viewerID = identity.AccountID
	}

	restaurant, err := h.services.RestaurantService.Get(r.Context(), restaurantID, viewerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, restaurant, http.StatusOK)
}

func (h *Handler) toggleScrap(w http.ResponseWriter, r *http.Request) {
	accountID, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	restaurantID, err := idParam(r, restaurantIDParam, validators.ErrInvalidRestaurantID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	scraped, err := h.services.RestaurantService.ToggleScrap(r.Context(), accountID, restaurantID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ScrapResponse{Success: true, IsScraped: scraped}, http.StatusOK)
}
