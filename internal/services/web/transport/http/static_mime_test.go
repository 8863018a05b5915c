package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWithStaticMimeSetsStylesheetType(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/static/SITE.CSS", nil)
	rr := httptest.NewRecorder()

	WithStaticMime(next).ServeHTTP(rr, req)

	if got := rr.Header().Get("Content-Type"); got != "text/css; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/css; charset=utf-8")
	}
}

func TestWithStaticMimeLeavesUnknownExtensionsAlone(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/static/logo.svg", nil)
	rr := httptest.NewRecorder()

	WithStaticMime(next).ServeHTTP(rr, req)

	if got := rr.Header().Get("Content-Type"); got != "" {
		t.Fatalf("content-type = %q, want empty", got)
	}
}
