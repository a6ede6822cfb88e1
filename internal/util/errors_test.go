package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func performError(t *testing.T, mode string) map[string]any {
	t.Helper()

	prev := gin.Mode()
	gin.SetMode(mode)
	t.Cleanup(func() { gin.SetMode(prev) })

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/listings/x", nil)

	SafeErrorResponse(c, http.StatusInternalServerError, "Failed to load listing", errors.New("disk I/O error"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func TestSafeErrorResponseHidesDetailInRelease(t *testing.T) {
	body := performError(t, gin.ReleaseMode)
	if body["success"] != false || body["message"] != "Failed to load listing" {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("error detail leaked in release mode: %v", body)
	}
}

func TestSafeErrorResponseShowsDetailInDebug(t *testing.T) {
	body := performError(t, gin.DebugMode)
	if body["error"] != "disk I/O error" {
		t.Fatalf("expected error detail, got %v", body)
	}
}
