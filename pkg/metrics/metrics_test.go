package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	r := NewRegistry()
	r.ObserveRequest("GET", "/api/v1/uri-paths/:obj_id", 404, 3*time.Millisecond)
	r.ObserveRequest("GET", "/api/v1/uri-paths/:obj_id", 404, 5*time.Millisecond)
	r.ObserveError("NOT_FOUND")

	assert.Equal(t, float64(2), testutil.ToFloat64(r.requests.WithLabelValues("GET", "/api/v1/uri-paths/:obj_id", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.errors.WithLabelValues("NOT_FOUND")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := NewRegistry()
	r.ObserveRequest("POST", "/api/v1/uri-paths", 201, time.Millisecond)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "resturihub_http_requests_total"))
}
