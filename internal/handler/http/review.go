package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-matjip/internal/app"
	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/utils"
	"github.com/MKhiriev/go-matjip/internal/validators"
	"github.com/MKhiriev/go-matjip/models"
)

// listMyReviews serves GET /api/user/review?cursor=. A missing cursor starts
// at the newest review.
func (h *Handler) listMyReviews(w http.ResponseWriter, r *http.Request) {
	accountID, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cursor, err := cursorParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.ReviewService.ListByAccount(r.Context(), accountID, cursor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writePage(w, page)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	accountID, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviewID, err := idParam(r, reviewIDParam, validators.ErrInvalidReviewID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.Get(r.Context(), accountID, reviewID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Data: review}, http.StatusOK)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	accountID, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviewID, err := idParam(r, reviewIDParam, validators.ErrInvalidReviewID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.ReviewContentRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidBody)
		return
	}

	review, err := h.services.ReviewService.Update(r.Context(), accountID, reviewID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ReviewUpdatedResponse{
		Success:   true,
		Message:   app.MsgReviewUpdated,
		UpdatedAt: review.UpdatedAt,
	}, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	accountID, err := identityFrom(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reviewID, err := idParam(r, reviewIDParam, validators.ErrInvalidReviewID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ReviewService.Delete(r.Context(), accountID, reviewID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: app.MsgReviewDeleted}, http.StatusOK)
}

// listRestaurantReviews is public; it serves GET
// /api/restaurant/{id}/reviews?cursor=.
func (h *Handler) listRestaurantReviews(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := idParam(r, restaurantIDParam, validators.ErrInvalidRestaurantID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cursor, err := cursorParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.ReviewService.ListByRestaurant(r.Context(), restaurantID, cursor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writePage(w, page)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
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

	var request models.ReviewContentRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidBody)
		return
	}

	review, err := h.services.ReviewService.Create(r.Context(), accountID, restaurantID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: app.MsgReviewCreated, Data: review}, http.StatusCreated)
}
