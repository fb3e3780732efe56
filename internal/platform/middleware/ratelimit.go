package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medrec/medrec/pkg/envelope"
)

// RateLimitConfig holds fixed-window rate limiting settings.
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

// DefaultRateLimitConfig returns the default fixed-window settings.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxRequests: 100,
		Window:      time.Minute,
	}
}

// windowEntry tracks the request count for one API key in the current window.
type windowEntry struct {
	count     int
	resetTime time.Time
}

// WindowStore holds per-API-key fixed-window counters. All access goes
// through Hit under a single mutex, so the read-modify-write per request is
// atomic.
type WindowStore struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	cfg     RateLimitConfig
	now     func() time.Time
}

// NewWindowStore creates an empty store for the given configuration.
func NewWindowStore(cfg RateLimitConfig) *WindowStore {
	return &WindowStore{
		entries: make(map[string]*windowEntry),
		cfg:     cfg,
		now:     time.Now,
	}
}

// Hit records one request for key and reports whether it is admitted, how
// many requests remain in the window, and when the window resets. An expired
// entry is reset on access, so correctness never depends on the sweeper.
func (s *WindowStore) Hit(key string) (allowed bool, remaining int, reset time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok || now.After(e.resetTime) {
		e = &windowEntry{count: 1, resetTime: now.Add(s.cfg.Window)}
		s.entries[key] = e
		return true, s.cfg.MaxRequests - 1, e.resetTime
	}

	e.count++
	if e.count > s.cfg.MaxRequests {
		return false, 0, e.resetTime
	}
	return true, s.cfg.MaxRequests - e.count, e.resetTime
}

// Sweep removes entries whose window has already expired.
func (s *WindowStore) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, e := range s.entries {
		if now.After(e.resetTime) {
			delete(s.entries, key)
		}
	}
}

// Len reports the number of tracked keys.
func (s *WindowStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartSweeper runs Sweep once per window until ctx is cancelled. The sweep
// is best-effort housekeeping bounding memory growth.
func (s *WindowStore) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.cfg.Window)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}

// windowLabel renders the window in the human terms used by the 429 message,
// e.g. "minute" for 60s rather than the duration's "1m0s".
func windowLabel(d time.Duration) string {
	switch {
	case d == time.Minute:
		return "minute"
	case d%time.Minute == 0:
		return fmt.Sprintf("%d minutes", d/time.Minute)
	default:
		return fmt.Sprintf("%d seconds", int(d.Seconds()))
	}
}

// rateLimitExceeded is the 429 body: the uniform envelope plus the instant
// at which the caller's window resets.
type rateLimitExceeded struct {
	envelope.Response
	ResetTime string `json:"resetTime"`
}

// RateLimit admits requests per API key against store. Requests without an
// X-API-Key header are rejected with 401 before any counter is touched.
// Every response, admitted or rejected, carries the limit headers.
func RateLimit(store *WindowStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get("X-API-Key")
			if apiKey == "" {
				return c.JSON(http.StatusUnauthorized, envelope.Response{
					Success: false,
					Error:   "API key required",
					Message: "Please provide an API key in the X-API-Key header",
				})
			}

			allowed, remaining, reset := store.Hit(apiKey)
			resetStr := reset.UTC().Format(time.RFC3339)

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(store.cfg.MaxRequests))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			h.Set("X-RateLimit-Reset", resetStr)

			if !allowed {
				return c.JSON(http.StatusTooManyRequests, rateLimitExceeded{
					Response: envelope.Response{
						Success: false,
						Error:   "Rate limit exceeded",
						Message: fmt.Sprintf("Too many requests. Limit is %d requests per %s",
							store.cfg.MaxRequests, windowLabel(store.cfg.Window)),
					},
					ResetTime: resetStr,
				})
			}

			return next(c)
		}
	}
}
