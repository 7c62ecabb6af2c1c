package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestRouterAllowsCrossOriginRequests(t *testing.T) {
	is := is.New(t)

	r := New("test")
	r.Get("/hello", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	req.Header.Set("Origin", "https://example.org")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	is.Equal(w.Code, http.StatusOK)
	is.True(w.Header().Get("Access-Control-Allow-Origin") != "") // cors headers should be set
}

func TestRouterRecoversFromPanics(t *testing.T) {
	is := is.New(t)

	r := New("test")
	r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	is.Equal(w.Code, http.StatusInternalServerError)
}
