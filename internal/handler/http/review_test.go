// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-matjip/internal/pagination"
	"github.com/MKhiriev/go-matjip/internal/store"
	"github.com/MKhiriev/go-matjip/models"
)

func label(s string) *string { return &s }

// ── my reviews ───────────────────────────────────────────────────────────────

func TestListMyReviews_PageWithCursor(t *testing.T) {
	h, m := newTestHandler(t)
	client := newTestClient(t, h)

	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	next := pagination.Cursor(41)
	m.expectValidToken()
	m.reviews.EXPECT().ListByAccount(gomock.Any(), testAccountID, pagination.Cursor(50)).Return(pagination.Page[models.ReviewSummary]{
		Items: []models.ReviewSummary{
			{ID: 42, RestaurantID: 3, RestaurantName: "Mapo", Content: "spicy", CreatedAt: created, Label: label("korean")},
			{ID: 41, RestaurantID: 4, RestaurantName: "Plain", Content: "ok", CreatedAt: created},
		},
		Next: &next,
	}, nil)

	resp, err := client.R().SetAuthToken(validToken).SetQueryParam("cursor", "50").Get("/api/user/review")
	require.NoError(t, err)
	requireStatus(t, resp, http.StatusOK)

	assert.JSONEq(t, `{
		"success": true,
		"reviews": [
			{"id":42,"restaurant_id":3,"restaurant_name":"Mapo","content":"spicy","created_at":"2026-05-01T10:00:00Z","label":"korean"},
			{"id":41,"restaurant_id":4,"restaurant_name":"Plain","content":"ok","created_at":"2026-05-01T10:00:00Z","label":null}
		],
		"lastCursor": 41
	}`, string(resp.Body()))
}

func TestListMyReviews_EmptyPage(t *testing.T) {
	h, m := newTestHandler(t)
	client := newTestClient(t, h)

	m.expectValidToken()
	m.reviews.EXPECT().ListByAccount(gomock.Any(), testAccountID, pagination.Start).Return(pagination.Page[models.ReviewSummary]{}, nil)

	resp, err := client.R().SetAuthToken(validToken).Get("/api/user/review")
	require.NoError(t, err)
	requireStatus(t, resp, http.StatusOK)
	assert.JSONEq(t, `{"success":true,"reviews":[],"lastCursor":null}`, string(resp.Body()))
}

func TestListMyReviews_BadCursor(t *testing.T) {
	h, m := newTestHandler(t)
	client := newTestClient(t, h)

	m.expectValidToken().Times(3)

	for _, cursor := range []string{"abc", "-1", "1.5"} {
		resp, err := client.R().SetAuthToken(validToken).SetQueryParam("cursor", cursor).Get("/api/user/review")
		require.NoError(t, err)
		requireStatus(t, resp, http.StatusBadRequest)
	}
}

func TestListMyReviews_RequiresToken(t *testing.T) {
	h, _ := newTestHandler(t)
	client := newTestClient(t, h)

	resp, err := client.R().Get("/api/user/review")
	require.NoError(t, err)
	requireStatus(t, resp, http.StatusUnauthorized)
	assert.Equal(t, "token is missing", decodeResponse(t, resp).Message)
}

// ── single review ────────────────────────────────────────────────────────────

func TestGetReview(t *testing.T) {
	h, m := newTestHandler(t)
	client := newTestClient(t, h)

	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	m.expectValidToken()
	m.reviews.EXPECT().Get(gomock.Any(), testAccountID, int64(9)).Return(models.Review{
		ID: 9, AccountID: testAccountID, RestaurantID: 3, Content: "good", CreatedAt: created, UpdatedAt: created,
	}, nil)

	resp, err := client.R().SetAuthToken(validToken).Get("/api/user/review/9")
	require.NoError(t, err)
	requireStatus(t, resp, http.StatusOK)
	assert.JSONEq(t, `{"success":true,"data":{"id":9,"restaurantId":3,"content":"good","createdAt":"2026-05-01T10:00:00Z","updatedAt":"2026-05-01T10:00:00Z"}}`,
		string(resp.Body()))
}

func TestGetReview_NotFoundOrForeign(t *testing.T) {
	h, m := newTestHandler(t)
	client := newTestClient(t, h)

	m.expectValidToken()
	m.reviews.EXPECT().Get(gomock.Any(), testAccountID, int64(9)).Return(models.Review{}, store.ErrReviewNotFound)

	resp, err := client.R().SetAuthToken(validToken).Get("/api/user/review/9")
	require.NoError(t, err)
	requireStatus(t, resp, http.StatusNotFound)
}

func TestGetReview_InvalidID(t *testing.T) {
	h, m := newTestHandler(t)
	client := newTestClient(t, h)

	m.expectValidToken().Times(2)

	for _, id := range []string{"abc", "0"} {
		resp, err := client.R().SetAuthToken(validToken).Get("/api/user/review/" + id)
		require.NoError(t, err)
		requireStatus(t, resp, http.StatusBadRequest)
		assert.Equal(t, "invalid review id", decodeResponse(t, resp).Message)
	}
}

func TestUpdateReview(t *testing.T) {
	h, m := newTestHandler(t)
	client := newTestClient(t, h)

	updated := time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC)
	m.expectValidToken()
	m.reviews.EXPECT().Update(gomock.Any(), testAccountID, int64(9), models.ReviewContentRequest{Content: "better"}).
		Return(models.Review{ID: 9, Content: "better", UpdatedAt: updated}, nil)

	resp, err := client.R().SetAuthToken(validToken).SetBody(models.ReviewContentRequest{Content: "better"}).Put("/api/user/review/9")
	require.NoError(t, err)
	requireStatus(t, resp, http.StatusOK)
	assert.JSONEq(t, `{"success":true,"message":"review updated","updatedAt":"2026-05-02T08:30:00Z"}`, string(resp.Body()))
}

func TestUpdateReview_Unchanged(t *testing.T) {
	h, m := newTestHandler(t)
	client := newTestClient(t, h)

	m.expectValidToken()
	m.reviews.EXPECT().Update(gomock.Any(), testAccountID, int64(9), gomock.Any()).Return(models.Review{}, store.ErrNoOpUpdate)

	resp, err := client.R().SetAuthToken(validToken).SetBody(models.ReviewContentRequest{Content: "same"}).Put("/api/user/review/9")
	require.NoError(t, err)
	requireStatus(t, resp, http.StatusBadRequest)
}

func TestDeleteReview(t *testing.T) {
	h, m := newTestHandler(t)
	client := newTestClient(t, h)

	m.expectValidToken()
	m.reviews.EXPECT().Delete(gomock.Any(), testAccountID, int64(9)).Return(nil)

	resp, err := client.R().SetAuthToken(validToken).Delete("/api/user/review/9")
	require.NoError(t, err)
	requireStatus(t, resp, http.StatusOK)
	assert.Equal(t, "review deleted", decodeResponse(t, resp).Message)
}

// ── restaurant reviews ───────────────────────────────────────────────────────

func TestListRestaurantReviews_Public(t *testing.T) {
	h, m := newTestHandler(t)
	client := newTestClient(t, h)

	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	m.reviews.EXPECT().ListByRestaurant(gomock.Any(), int64(3), pagination.Start).Return(pagination.Page[models.RestaurantReview]{
		Items: []models.RestaurantReview{{ID: 5, Content: "yum", CreatedAt: created, Nickname: "Ann", Tag: 1}},
	}, nil)

	resp, err := client.R().Get("/api/restaurant/3/reviews")
	require.NoError(t, err)
	requireStatus(t, resp, http.StatusOK)
	assert.JSONEq(t, `{"success":true,"reviews":[{"id":5,"content":"yum","createdAt":"2026-05-01T10:00:00Z","nickname":"Ann","tag":"#01"}],"lastCursor":null}`,
		string(resp.Body()))
}

func TestListRestaurantReviews_UnknownRestaurant(t *testing.T) {
	h, m := newTestHandler(t)
	client := newTestClient(t, h)

	m.reviews.EXPECT().ListByRestaurant(gomock.Any(), int64(3), pagination.Start).
		Return(pagination.Page[models.RestaurantReview]{}, store.ErrRestaurantNotFound)

	resp, err := client.R().Get("/api/restaurant/3/reviews")
	require.NoError(t, err)
	requireStatus(t, resp, http.StatusNotFound)
}

func TestCreateReview(t *testing.T) {
	h, m := newTestHandler(t)
	client := newTestClient(t, h)

	m.expectValidToken()
	m.reviews.EXPECT().Create(gomock.Any(), testAccountID, int64(3), models.ReviewContentRequest{Content: "yum"}).
		Return(models.Review{ID: 11, RestaurantID: 3, Content: "yum"}, nil)

	resp, err := client.R().SetAuthToken(validToken).SetBody(models.ReviewContentRequest{Content: "yum"}).Post("/api/restaurant/3/reviews")
	require.NoError(t, err)
	requireStatus(t, resp, http.StatusCreated)

	body := decodeResponse(t, resp)
	assert.True(t, body.Success)
	assert.Equal(t, "review created", body.Message)
}

func TestCreateReview_RequiresToken(t *testing.T) {
	h, _ := newTestHandler(t)
	client := newTestClient(t, h)

	resp, err := client.R().SetBody(models.ReviewContentRequest{Content: "yum"}).Post("/api/restaurant/3/reviews")
	require.NoError(t, err)
	requireStatus(t, resp, http.StatusUnauthorized)
}
