package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// loggingMiddleware tags every request with an ID and logs method, path,
// status and duration once the handler returns.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		wrw := newResponseWriterWrapper(w)
		wrw.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(wrw, r)

		s.logger.Info("request handled",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", wrw.statusCode),
			zap.Int("bytes", wrw.bytes),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
