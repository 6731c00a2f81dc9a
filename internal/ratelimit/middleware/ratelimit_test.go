package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodnet/internal/ratelimit/metrics"
	"bloodnet/internal/ratelimit/models"
	"bloodnet/internal/ratelimit/store"
	"bloodnet/pkg/platform/middleware/metadata"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (*models.Result, error) {
	return nil, errors.New("limiter offline")
}

func newHandler(l Limiter, m *metrics.Metrics, opts ...Option) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := New(l, logger, append(opts, WithMetrics(m))...)
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return metadata.ClientMetadata(mw.RateLimit(ok))
}

func request(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/donors/Chennai/O+", nil)
	req.Header.Set("X-Forwarded-For", ip)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRateLimitPerClientIP(t *testing.T) {
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	h := newHandler(store.NewSlidingWindow(2, time.Minute, store.WithClock(func() time.Time { return now })), m)

	first := request(h, "203.0.113.7")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	require.Equal(t, http.StatusOK, request(h, "203.0.113.7").Code)

	refused := request(h, "203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, refused.Code)
	assert.Equal(t, "60", refused.Header().Get("Retry-After"))
	assert.JSONEq(t,
		`{"error":"rate_limit_exceeded","message":"Too many requests from this IP address. Please try again later.","retry_after":60}`,
		refused.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Rejections))

	assert.Equal(t, http.StatusOK, request(h, "198.51.100.1").Code, "other clients are unaffected")
}

func TestRateLimitFailsOpen(t *testing.T) {
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	rr := request(newHandler(failingLimiter{}, m), "203.0.113.7")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Errors))
}

func TestRateLimitDisabled(t *testing.T) {
	h := newHandler(store.NewSlidingWindow(1, time.Minute), nil, WithDisabled(true))
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, request(h, "203.0.113.7").Code)
	}
}
