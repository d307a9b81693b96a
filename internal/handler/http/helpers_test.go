// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-matjip/internal/config"
	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/mock"
	"github.com/MKhiriev/go-matjip/internal/service"
	"github.com/MKhiriev/go-matjip/models"
)

const (
	validToken     = "valid-token"
	testAccountID  = int64(7)
	testUploadSize = 1024
)

type handlerMocks struct {
	tokens      *mock.MockTokenService
	accounts    *mock.MockAccountService
	reviews     *mock.MockReviewService
	restaurants *mock.MockRestaurantService
	appInfo     *mock.MockAppInfoService
}

func newTestConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		Server: config.Server{MaxUploadSize: testUploadSize},
	}
}

func newTestHandler(t *testing.T) (*Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		tokens:      mock.NewMockTokenService(ctrl),
		accounts:    mock.NewMockAccountService(ctrl),
		reviews:     mock.NewMockReviewService(ctrl),
		restaurants: mock.NewMockRestaurantService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	return NewHandler(servicesOf(m), newTestConfig(), nil, logger.Nop()), m
}

func servicesOf(m handlerMocks) *service.Services {
	return &service.Services{
		TokenService:      m.tokens,
		AccountService:    m.accounts,
		ReviewService:     m.reviews,
		RestaurantService: m.restaurants,
		AppInfoService:    m.appInfo,
	}
}

// modelsIdentityZero is what a failed validation returns.
var modelsIdentityZero = models.Identity{}

// newTestClient serves h over a real listener and returns a client bound
// to it.
func newTestClient(t *testing.T, h *Handler) *resty.Client {
	t.Helper()
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return resty.New().SetBaseURL(srv.URL)
}

// expectValidToken makes the token service accept validToken as
// testAccountID.
func (m handlerMocks) expectValidToken() *gomock.Call {
	return m.tokens.EXPECT().Validate(gomock.Any(), validToken).
		Return(models.Identity{AccountID: testAccountID, Username: "alice"}, nil)
}

func decodeResponse(t *testing.T, resp *resty.Response) models.Response {
	t.Helper()
	var body models.Response
	require.NoError(t, json.Unmarshal(resp.Body(), &body), string(resp.Body()))
	return body
}

func requireStatus(t *testing.T, resp *resty.Response, want int) {
	t.Helper()
	require.Equal(t, want, resp.StatusCode(), "%s %s: %s", resp.Request.Method, resp.Request.URL, resp.Body())
}
