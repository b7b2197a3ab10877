package http

import "net/http"

// responseData accumulates what the wrapped handler wrote.
type responseData struct {
	status int
	size   int
}

// loggingResponseWriter wraps http.ResponseWriter to capture the status code
// and body size for the logging middleware.
type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (w *loggingResponseWriter) Write(b []byte) (int, error) {
	if w.responseData.status == 0 {
		w.responseData.status = http.StatusOK
	}

	size, err := w.ResponseWriter.Write(b)
	w.responseData.size += size
	return size, err
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	if w.responseData.status == 0 {
		w.responseData.status = statusCode
	}
	w.ResponseWriter.WriteHeader(statusCode)
}
