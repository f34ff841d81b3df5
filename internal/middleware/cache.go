// Package middleware contains http middlewares shared by the api.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/Decentr-net/usly/internal/middleware/memory"
)

// Storage ...
type Storage interface {
	Get(key string) []byte
	Set(key string, content []byte, duration time.Duration)
}

// Cached caches successful responses of the handler by request uri for ttl.
func Cached(ttl time.Duration, handler http.HandlerFunc) http.HandlerFunc {
	return CachedWith(memory.NewStorage(), ttl, handler)
}

// CachedWith is Cached over the given storage.
func CachedWith(storage Storage, ttl time.Duration, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if content := storage.Get(r.RequestURI); content != nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			_, _ = w.Write(content)
			return
		}

		c := httptest.NewRecorder()
		handler(c, r)

		for k, v := range c.Header() {
			w.Header()[k] = v
		}

		w.WriteHeader(c.Code)
		content := c.Body.Bytes()

		if c.Code == http.StatusOK {
			storage.Set(r.RequestURI, content, ttl)
		}

		_, _ = w.Write(content)
	}
}
