package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHandler_Healthy(t *testing.T) {
	handler := NewHandler("lunchly", "v1.0.0")
	handler.RegisterChecker("storage", NewPingChecker(fakePinger{}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response Response
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != StatusHealthy {
		t.Errorf("expected status healthy, got %s", response.Status)
	}
	if response.Service != "lunchly" || response.Version != "v1.0.0" {
		t.Errorf("unexpected service/version: %s/%s", response.Service, response.Version)
	}
	if len(response.Checks) != 1 || response.Checks[0].Name != "storage" {
		t.Errorf("expected single storage check, got %+v", response.Checks)
	}
}

func TestHandler_Unhealthy(t *testing.T) {
	handler := NewHandler("lunchly", "v1.0.0")
	handler.RegisterChecker("storage", NewPingChecker(fakePinger{err: errors.New("connection refused")}))
	handler.RegisterChecker("noop", CheckFunc(func(context.Context) error { return nil }))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}

	var response Response
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != StatusUnhealthy {
		t.Errorf("expected status unhealthy, got %s", response.Status)
	}
	// проверки отсортированы по имени
	if response.Checks[0].Name != "noop" || response.Checks[1].Message != "connection refused" {
		t.Errorf("unexpected checks: %+v", response.Checks)
	}
}

func TestHandler_CheckTimeout(t *testing.T) {
	handler := NewHandler("lunchly", "dev")
	handler.timeout = 10 * time.Millisecond
	handler.RegisterChecker("slow", CheckFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))

	status, checks := handler.Run(context.Background())
	if status != StatusUnhealthy {
		t.Fatalf("expected unhealthy, got %s", status)
	}
	if checks[0].Message != context.DeadlineExceeded.Error() {
		t.Errorf("unexpected message %q", checks[0].Message)
	}
}

func TestReadinessHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{name: "ready", code: http.StatusOK, body: "ready"},
		{name: "not ready", err: errors.New("down"), code: http.StatusServiceUnavailable, body: "not ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler("lunchly", "dev")
			handler.RegisterChecker("storage", NewPingChecker(fakePinger{err: tt.err}))

			w := httptest.NewRecorder()
			handler.ReadinessHandler(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if w.Code != tt.code {
				t.Errorf("expected status %d, got %d", tt.code, w.Code)
			}
			if w.Body.String() != tt.body {
				t.Errorf("expected body %q, got %q", tt.body, w.Body.String())
			}
		})
	}
}

func TestLivenessHandler(t *testing.T) {
	w := httptest.NewRecorder()
	LivenessHandler(w, httptest.NewRequest(http.MethodGet, "/livez", nil))

	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Errorf("unexpected liveness response: %d %q", w.Code, w.Body.String())
	}
}
