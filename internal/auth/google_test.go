package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"airesume-backend/internal/users"
)

func TestStartRejectsMissingConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := NewGoogleService("", "", "", "http://localhost:5173/auth", &users.Service{Repo: users.NewMemoryRepo()})
	svc.RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/start", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when unconfigured, got %d", resp.Code)
	}
}

func TestCallbackRejectsUnknownState(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := NewGoogleService("id", "secret", "http://localhost:8080/cb", "http://localhost:5173/auth", &users.Service{Repo: users.NewMemoryRepo()})
	svc.RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=bogus&code=abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown state, got %d", resp.Code)
	}
}

func TestStateStoreConsumeOnce(t *testing.T) {
	store := newStateStore()
	store.put("s1", time.Now().Add(time.Minute))

	if !store.consume("s1") {
		t.Fatalf("first consume should succeed")
	}
	if store.consume("s1") {
		t.Fatalf("second consume must fail")
	}
}

func TestStateStoreExpiry(t *testing.T) {
	store := newStateStore()
	store.put("s1", time.Now().Add(-time.Second))

	if store.consume("s1") {
		t.Fatalf("expired state must not validate")
	}
}

func TestAppendToken(t *testing.T) {
	got, err := appendToken("http://localhost:5173/auth?next=%2Fdashboard", "tok123")
	if err != nil {
		t.Fatalf("appendToken: %v", err)
	}
	if got != "http://localhost:5173/auth?next=%2Fdashboard&token=tok123" {
		t.Fatalf("unexpected url %q", got)
	}
}
