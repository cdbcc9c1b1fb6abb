package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status  int
	headers http.Header
	body    []byte
}

type bodyCacheWriter struct {
	http.ResponseWriter
	status int
	body   *bytes.Buffer
}

func (w *bodyCacheWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *bodyCacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache serves repeated GET requests from an in-memory store. Availability
// answers only move once a day (or when the schedule file changes), so a
// short TTL keeps the booking form snappy without serving stale calendars.
func Cache(store *cache.Cache, ttl time.Duration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := r.URL.RequestURI()
			if resp, found := store.Get(key); found {
				cached := resp.(cachedResponse)
				for k, v := range cached.headers {
					w.Header()[k] = v
				}
				w.WriteHeader(cached.status)
				_, _ = w.Write(cached.body)
				return
			}

			bw := &bodyCacheWriter{ResponseWriter: w, status: http.StatusOK, body: bytes.NewBuffer(nil)}
			next.ServeHTTP(bw, r)

			// Only cache successful responses
			if bw.status >= 200 && bw.status < 300 {
				store.Set(key, cachedResponse{
					status:  bw.status,
					headers: bw.Header().Clone(),
					body:    bw.body.Bytes(),
				}, ttl)
			}
		})
	}
}
