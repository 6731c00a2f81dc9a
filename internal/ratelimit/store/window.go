package store

import (
	"context"
	"math"
	"sync"
	"time"

	"bloodnet/internal/ratelimit/models"
)

// SlidingWindow is an in-memory sliding-window limiter keyed by client.
// It is process-local; replicas do not share counts.
type SlidingWindow struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	buckets   map[string][]time.Time
	lastSweep time.Time
}

type Option func(*SlidingWindow)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *SlidingWindow) { s.now = now }
}

// NewSlidingWindow allows limit requests per key within any window-long span.
func NewSlidingWindow(limit int, window time.Duration, opts ...Option) *SlidingWindow {
	s := &SlidingWindow{
		limit:   limit,
		window:  window,
		now:     time.Now,
		buckets: make(map[string][]time.Time),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Allow records a request for key when it fits the window.
func (s *SlidingWindow) Allow(_ context.Context, key string) (*models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)
	stamps := prune(s.buckets[key], now.Add(-s.window))

	if len(stamps) >= s.limit {
		s.buckets[key] = stamps
		resetAt := stamps[0].Add(s.window)
		return &models.Result{
			Allowed:    false,
			Limit:      s.limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfter(resetAt.Sub(now)),
		}, nil
	}

	stamps = append(stamps, now)
	s.buckets[key] = stamps
	return &models.Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - len(stamps),
		ResetAt:   stamps[0].Add(s.window),
	}, nil
}

// Count returns the requests recorded for key in the current window.
func (s *SlidingWindow) Count(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamps := prune(s.buckets[key], s.now().Add(-s.window))
	if len(stamps) == 0 {
		delete(s.buckets, key)
		return 0
	}
	s.buckets[key] = stamps
	return len(stamps)
}

// sweep drops idle clients at most once per window. Callers hold mu.
func (s *SlidingWindow) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < s.window {
		return
	}
	s.lastSweep = now
	cutoff := now.Add(-s.window)
	for key, stamps := range s.buckets {
		if len(stamps) == 0 || !stamps[len(stamps)-1].After(cutoff) {
			delete(s.buckets, key)
		}
	}
}

// Reset forgets every request recorded for key.
func (s *SlidingWindow) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
}

// prune drops timestamps at or before cutoff. Timestamps are ascending.
func prune(stamps []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(stamps) && !stamps[i].After(cutoff) {
		i++
	}
	return stamps[i:]
}

// retryAfter rounds up to whole seconds, never below one.
func retryAfter(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
