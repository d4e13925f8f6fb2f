package middleware

import (
	"net/http"
	"time"

	"github.com/kazqvaizer/kalinsky-maker/internal/infrastructure/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush keeps SSE streaming working through the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// RequestLogger logs one debug line per request, or a warning for 5xx.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log := logger.With(
			"method", r.Method,
			"path", logger.SanitizeForLog(r.URL.Path),
			"status", rec.status,
			"duration", time.Since(start).Round(time.Microsecond),
		)
		if rec.status >= http.StatusInternalServerError {
			log.Warn("request failed")
			return
		}
		log.Debug("request")
	})
}
