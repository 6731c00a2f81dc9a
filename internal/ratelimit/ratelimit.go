// Package ratelimit throttles API clients by IP with an in-memory sliding
// window, so donor contact listings cannot be bulk-scraped.
package ratelimit

import (
	"log/slog"
	"time"

	"bloodnet/internal/ratelimit/metrics"
	"bloodnet/internal/ratelimit/middleware"
	"bloodnet/internal/ratelimit/store"
)

type Middleware = middleware.Middleware

// New allows limit requests per client IP within window. A limit of zero
// or less disables limiting.
func New(limit int, window time.Duration, logger *slog.Logger, m *metrics.Metrics) *Middleware {
	return middleware.New(
		store.NewSlidingWindow(limit, window),
		logger,
		middleware.WithMetrics(m),
		middleware.WithDisabled(limit <= 0),
	)
}
