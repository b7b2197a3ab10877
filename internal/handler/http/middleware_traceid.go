package http

import (
	"net/http"

	"github.com/google/uuid"
)

// traceIDHeader carries the request's trace ID back to the caller.
const traceIDHeader = "X-Trace-Id"

// withTraceID assigns each request a trace ID, attaches a logger carrying it
// to the request context and echoes it in the response headers.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := uuid.NewString()

		log := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := log.WithContext(r.Context())

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
