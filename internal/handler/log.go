package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"debt-control/internal/middleware"
	"debt-control/internal/models"
	"debt-control/internal/util"

	"github.com/gin-gonic/gin"
)

// AuditLister is the read side of the audit trail.
type AuditLister interface {
	ListByAccount(ctx context.Context, accountID uint, page, size int) ([]models.AuditLog, int64, error)
}

// LogHandler lists the caller's audit trail.
type LogHandler struct {
	Logs     AuditLister
	PageSize int
}

func NewLogHandler(logs AuditLister, pageSize int) *LogHandler {
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return &LogHandler{Logs: logs, PageSize: pageSize}
}

type logResp struct {
	ID         uint      `json:"id"`
	RequestID  string    `json:"request_id"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	IP         string    `json:"ip"`
	UserAgent  string    `json:"user_agent"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListLogs pages through the current account's requests, newest first.
func (h *LogHandler) ListLogs(c *gin.Context) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.PageSize)))
	if size <= 0 || size > 100 {
		size = h.PageSize
	}

	logs, total, err := h.Logs.ListByAccount(c.Request.Context(), account.ID, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]logResp, 0, len(logs))
	for _, l := range logs {
		items = append(items, logResp{
			ID:         l.ID,
			RequestID:  l.RequestID,
			Method:     l.Method,
			Path:       l.Path,
			StatusCode: l.StatusCode,
			IP:         l.IP,
			UserAgent:  l.UserAgent,
			CreatedAt:  l.CreatedAt,
		})
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
