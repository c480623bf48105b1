package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// BodyLimit ограничивает размер тела запроса, при limit <= 0 ничего не делает
func BodyLimit(limit int64) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
