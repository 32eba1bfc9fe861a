package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"debt-control/internal/middleware"
	"debt-control/internal/models"
	"debt-control/internal/report"
	"debt-control/internal/service"
	"debt-control/internal/util"

	"github.com/gin-gonic/gin"
)

// ExportHandler renders the current account's statement for download.
type ExportHandler struct {
	Ledger *service.LedgerService
}

func NewExportHandler(ledger *service.LedgerService) *ExportHandler {
	return &ExportHandler{Ledger: ledger}
}

type statementFormat struct {
	ext         string
	contentType string
	write       func(io.Writer, *report.Statement) error
}

var statementFormats = map[string]statementFormat{
	"xlsx": {"xlsx", report.ContentTypeXLSX, report.WriteXLSX},
	"csv":  {"csv", report.ContentTypeCSV, report.WriteCSV},
	"pdf":  {"pdf", report.ContentTypePDF, report.WritePDF},
}

// Statement serves GET /me/statement?format=xlsx|csv|pdf (xlsx by default).
func (h *ExportHandler) Statement(c *gin.Context) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not authenticated")
		return
	}

	format, ok := statementFormats[c.DefaultQuery("format", "xlsx")]
	if !ok {
		badRequest(c, "format must be one of xlsx, csv, pdf")
		return
	}

	entries, err := h.Ledger.Filter(c.Request.Context(), models.EntryFilter{AccountID: account.ID})
	if err != nil {
		respondError(c, err)
		return
	}
	st := report.NewStatement(*account, entries, time.Now())

	// render fully before writing headers so a failure can still become a JSON error
	var buf bytes.Buffer
	if err := format.write(&buf, st); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", st.Filename(format.ext)))
	c.Data(http.StatusOK, format.contentType, buf.Bytes())
}
