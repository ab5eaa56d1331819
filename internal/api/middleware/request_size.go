package middleware

import "net/http"

// DefaultMaxBodySize caps request bodies at 1MB; nothing this API accepts is
// larger than a small JSON document.
const DefaultMaxBodySize int64 = 1 << 20

func RequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
