package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func testConfig(max int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{MaxRequests: max, Window: window}
}

func doRequest(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, apiKey string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRateLimit_MissingAPIKey(t *testing.T) {
	store := NewWindowStore(testConfig(100, time.Minute))
	e := echo.New()
	handler := RateLimit(store)(okHandler)

	rec := doRequest(t, e, handler, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if store.Len() != 0 {
		t.Errorf("expected no counter to be touched, got %d entries", store.Len())
	}

	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["success"] != false {
		t.Errorf("expected success false, got %v", body["success"])
	}
	if body["error"] != "API key required" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestRateLimit_FirstRequestHeaders(t *testing.T) {
	store := NewWindowStore(testConfig(100, time.Minute))
	e := echo.New()
	handler := RateLimit(store)(okHandler)

	rec := doRequest(t, e, handler, "key-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-RateLimit-Limit"); got != "100" {
		t.Errorf("expected limit header 100, got %q", got)
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "99" {
		t.Errorf("expected remaining 99, got %q", got)
	}
	if rec.Header().Get("X-RateLimit-Reset") == "" {
		t.Error("expected reset header to be set")
	}
}

func TestRateLimit_101stRequestRejected(t *testing.T) {
	store := NewWindowStore(testConfig(100, time.Minute))
	e := echo.New()
	handler := RateLimit(store)(okHandler)

	for i := 0; i < 100; i++ {
		rec := doRequest(t, e, handler, "key-1")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := doRequest(t, e, handler, "key-1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("request 101: expected 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("expected remaining 0, got %q", got)
	}

	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "Rate limit exceeded" {
		t.Errorf("unexpected error: %v", body["error"])
	}
	if body["resetTime"] == nil || body["resetTime"] == "" {
		t.Error("expected resetTime in rejection body")
	}
	if body["message"] != "Too many requests. Limit is 100 requests per minute" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestWindowLabel(t *testing.T) {
	tests := []struct {
		window time.Duration
		want   string
	}{
		{time.Minute, "minute"},
		{5 * time.Minute, "5 minutes"},
		{30 * time.Second, "30 seconds"},
		{90 * time.Second, "90 seconds"},
	}
	for _, tt := range tests {
		if got := windowLabel(tt.window); got != tt.want {
			t.Errorf("windowLabel(%v) = %q, want %q", tt.window, got, tt.want)
		}
	}
}

func TestRateLimit_KeysAreIndependent(t *testing.T) {
	store := NewWindowStore(testConfig(2, time.Minute))
	e := echo.New()
	handler := RateLimit(store)(okHandler)

	doRequest(t, e, handler, "key-a")
	doRequest(t, e, handler, "key-a")
	rec := doRequest(t, e, handler, "key-a")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected key-a to be limited, got %d", rec.Code)
	}

	rec = doRequest(t, e, handler, "key-b")
	if rec.Code != http.StatusOK {
		t.Errorf("expected key-b to be admitted, got %d", rec.Code)
	}
}

func TestWindowStore_ResetAfterWindow(t *testing.T) {
	store := NewWindowStore(testConfig(2, time.Minute))
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.Hit("key")
	store.Hit("key")
	allowed, _, _ := store.Hit("key")
	if allowed {
		t.Fatal("expected third hit to be rejected")
	}

	// After the window elapses the next request starts a fresh window.
	current = current.Add(61 * time.Second)
	allowed, remaining, reset := store.Hit("key")
	if !allowed {
		t.Fatal("expected request after reset to be admitted")
	}
	if remaining != 1 {
		t.Errorf("expected remaining 1 in new window, got %d", remaining)
	}
	if !reset.Equal(current.Add(time.Minute)) {
		t.Errorf("expected reset %s, got %s", current.Add(time.Minute), reset)
	}
}

func TestWindowStore_Sweep(t *testing.T) {
	store := NewWindowStore(testConfig(100, time.Minute))
	current := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.Hit("expired")
	current = current.Add(2 * time.Minute)
	store.Hit("live")

	store.Sweep()
	if store.Len() != 1 {
		t.Errorf("expected only the live key to survive, got %d entries", store.Len())
	}
}
