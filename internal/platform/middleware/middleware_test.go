package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		rid, _ := c.Get("request_id").(string)
		if rid == "" {
			t.Error("expected request_id in context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID response header")
	}
}

func TestRequestID_HonorsInboundHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "req-abc" {
		t.Errorf("expected inbound id to be echoed, got %q", got)
	}
}

func TestLogger_LogsRequestLine(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/patients?patientId=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("request_id", "req-123")

	handler := Logger(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := buf.String()
	for _, want := range []string{"req-123", "GET", "/api/patients", "patientId=1"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected log line to contain %q, got %s", want, line)
		}
	}
}

func TestRecovery_ConvertsPanicTo500(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Recovery(logger)(func(c echo.Context) error {
		panic("boom")
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `"success":false`) {
		t.Errorf("expected envelope failure shape, got %s", body)
	}
	if !strings.Contains(body, "Internal server error") {
		t.Errorf("expected generic error message, got %s", body)
	}
	if strings.Contains(body, "boom") {
		t.Error("expected panic value kept out of the response")
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Error("expected panic value to be logged")
	}
}
