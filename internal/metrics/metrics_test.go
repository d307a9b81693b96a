// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_ExposesCollectors(t *testing.T) {
	reg := NewRegistry()

	RecordHTTPRequest(http.MethodGet, "/api/user/me", http.StatusOK, 15*time.Millisecond)
	RecordTagAllocation()
	RecordBlobUpload(StatusSuccess)

	families, err := reg.Gather()
	require.NoError(t, err)

	registered := make(map[string]bool)
	for _, family := range families {
		registered[family.GetName()] = true
	}

	for _, name := range []string{
		"matjip_http_requests_total",
		"matjip_http_request_duration_seconds",
		"matjip_tag_allocations_total",
		"matjip_tag_allocation_retries_total",
		"matjip_blob_uploads_total",
		"go_goroutines",
	} {
		assert.True(t, registered[name], "metric %q should be registered", name)
	}
}

func TestRecordHTTPRequest_UsesStatusCode(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodPost, "/api/user/register", "400"))

	RecordHTTPRequest(http.MethodPost, "/api/user/register", http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodPost, "/api/user/register", "400")))
}

func TestRecordTagRetry(t *testing.T) {
	before := testutil.ToFloat64(TagAllocationRetries)
	RecordTagRetry()
	RecordTagRetry()
	assert.Equal(t, before+2, testutil.ToFloat64(TagAllocationRetries))
}

func TestHandler(t *testing.T) {
	reg := NewRegistry()
	RecordBlobUpload(StatusError)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `matjip_blob_uploads_total{status="error"}`))
}
