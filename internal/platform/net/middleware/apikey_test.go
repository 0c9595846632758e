package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "github.com/shivxmhere/ai-voice-detector/internal/platform/net/http"
	"github.com/shivxmhere/ai-voice-detector/internal/platform/net/middleware"
)

func guarded(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	reached := false
	key := middleware.StaticKey{Header: "x-api-key", Secret: "buildathon_2024_secret_key"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	return middleware.APIKey(key, phttp.JSON)(next), &reached
}

func TestAPIKeyValid(t *testing.T) {
	h, reached := guarded(t)
	req := httptest.NewRequest(http.MethodPost, "/detect", nil)
	req.Header.Set("x-api-key", "buildathon_2024_secret_key")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !*reached {
		t.Fatal("expected handler to run for a valid key")
	}
}

func TestAPIKeyWrong(t *testing.T) {
	h, reached := guarded(t)
	req := httptest.NewRequest(http.MethodPost, "/detect", nil)
	req.Header.Set("x-api-key", "wrong_key")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if *reached {
		t.Fatal("handler must not run when the key is wrong")
	}
	var body struct {
		StatusCode int    `json:"status_code"`
		Error      string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.StatusCode != 401 || body.Error != "Invalid API key" {
		t.Fatalf("body = %+v, want status_code 401, error %q", body, "Invalid API key")
	}
}

func TestAPIKeyMissing(t *testing.T) {
	h, reached := guarded(t)
	req := httptest.NewRequest(http.MethodPost, "/detect", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if *reached {
		t.Fatal("handler must not run when the key is absent")
	}
}
