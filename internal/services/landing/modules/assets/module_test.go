package assets

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMountServesStylesheet(t *testing.T) {
	t.Parallel()

	mount, err := New().Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/static/" {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, "/static/")
	}

	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/landing.css", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/css") {
		t.Fatalf("content-type = %q, want text/css", got)
	}
	if !strings.Contains(rr.Body.String(), ".step-card") {
		t.Fatal("stylesheet body missing .step-card rule")
	}
}

func TestMountRejectsPost(t *testing.T) {
	t.Parallel()

	mount, err := Module{}.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/static/landing.css", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestMountReturnsNotFoundForMissingAsset(t *testing.T) {
	t.Parallel()

	mount, _ := New().Mount()
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/missing.js", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
