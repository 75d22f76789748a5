package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCacheNilClientPassesThrough(t *testing.T) {
	var calls int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	})

	handler := Cache(nil, DefaultCacheConfig(), next)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/instruments", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if rec.Header().Get("X-Cache") == "HIT" {
			t.Error("nil client must never serve a cache hit")
		}
	}
	if calls != 2 {
		t.Errorf("next called %d times, want 2", calls)
	}
}

func TestCacheKeyVariesByQuery(t *testing.T) {
	a := generateCacheKey(httptest.NewRequest(http.MethodGet, "/api/instruments?page=1", nil))
	b := generateCacheKey(httptest.NewRequest(http.MethodGet, "/api/instruments?page=2", nil))
	if a == b {
		t.Error("cache keys for different queries must differ")
	}
}
