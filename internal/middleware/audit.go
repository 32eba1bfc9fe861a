package middleware

import (
	"context"

	"debt-control/internal/log"
	"debt-control/internal/models"

	"github.com/gin-gonic/gin"
)

// AuditRecorder persists audit rows.
type AuditRecorder interface {
	Record(ctx context.Context, l *models.AuditLog) error
}

// AuditMiddleware stores one audit row per request once the handler chain
// has finished. The account is attached when AuthMiddleware ran first.
func AuditMiddleware(recorder AuditRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		entry := models.AuditLog{
			RequestID:  RequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}
		if account, ok := CurrentAccount(c); ok {
			id := account.ID
			entry.AccountID = &id
		}

		if err := recorder.Record(c.Request.Context(), &entry); err != nil {
			log.FromContext(c.Request.Context()).
				WithComponent(log.ComponentAudit).
				Error("audit write failed", log.FieldError, err)
		}
	}
}
