package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type Logger interface {
	Info(format string, v ...interface{})
}

// AccessLog одна строка лога на запрос
func AccessLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			log.Info("%s %s - status=%d, bytes=%d, duration=%dms, request_id=%s",
				r.Method, r.URL.Path, rec.status, rec.bytes,
				time.Since(start).Milliseconds(), RequestIDFromContext(r.Context()))
		})
	}
}
