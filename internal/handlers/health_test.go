package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"softsell/internal/storage"
)

func TestHealthHandler_ServeHTTP(t *testing.T) {
	db, err := storage.New(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("storage.Migrate() error = %v", err)
	}

	t.Run("healthy", func(t *testing.T) {
		handler := NewHealthHandler(db, true)
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ServeHTTP() status = %v, want %v", w.Code, http.StatusOK)
		}
		var resp HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("response not decodable: %v", err)
		}
		if resp.Status != "healthy" {
			t.Errorf("status = %q, want healthy", resp.Status)
		}
		if resp.Checks["database"] != "ok" || resp.Checks["relay"] != "ok" {
			t.Errorf("checks = %v", resp.Checks)
		}
	})

	t.Run("relay not configured", func(t *testing.T) {
		handler := NewHealthHandler(db, false)
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("ServeHTTP() status = %v, want %v", w.Code, http.StatusServiceUnavailable)
		}
		var resp HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("response not decodable: %v", err)
		}
		if resp.Status != "unhealthy" {
			t.Errorf("status = %q, want unhealthy", resp.Status)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		handler := NewHealthHandler(db, true)
		req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("ServeHTTP() status = %v, want %v", w.Code, http.StatusMethodNotAllowed)
		}
	})
}
