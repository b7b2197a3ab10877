package http

import (
	"net/http"
	"time"

	"github.com/avoronov/go-library-api/internal/logger"
)

// withLogging logs one line per request: method, path, status, body size and
// duration.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		data := &responseData{}
		lw := &loggingResponseWriter{ResponseWriter: w, responseData: data}

		next.ServeHTTP(lw, r)

		if data.status == 0 {
			data.status = http.StatusOK
		}

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", data.status).
			Int("size", data.size).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
