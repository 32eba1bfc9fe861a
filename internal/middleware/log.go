package middleware

import (
	"log/slog"
	"time"

	"debt-control/internal/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestID"
)

// RequestLogger tags each request with an id, puts a request-scoped logger in
// the request context and writes one structured line when the request ends.
func RequestLogger(logger *log.Logger) gin.HandlerFunc {
	httpLogger := logger.WithComponent(log.ComponentHTTP)

	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		reqLogger := httpLogger.With(log.FieldRequestID, requestID)
		c.Request = c.Request.WithContext(log.IntoContext(c.Request.Context(), reqLogger))

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		args := []any{
			log.FieldMethod, c.Request.Method,
			log.FieldPath, c.Request.URL.Path,
			log.FieldStatusCode, status,
			log.FieldDuration, time.Since(start).Milliseconds(),
			log.FieldClientIP, c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			args = append(args, log.FieldError, c.Errors.String())
		}
		reqLogger.Log(c.Request.Context(), level, "request completed", args...)
	}
}

// RequestID returns the id assigned by RequestLogger, or "".
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
