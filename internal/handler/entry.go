package handler

import (
	"context"
	"errors"
	"strings"

	"debt-control/internal/models"
	"debt-control/internal/service"
	"debt-control/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// EntryHandler serves the /entries resource.
type EntryHandler struct {
	Ledger   *service.LedgerService
	Accounts *service.AccountService
}

func NewEntryHandler(ledger *service.LedgerService, accounts *service.AccountService) *EntryHandler {
	return &EntryHandler{
		Ledger:   ledger,
		Accounts: accounts,
	}
}

// ---------- request bodies ----------

type entryReq struct {
	Description string          `json:"description"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	User        uint            `json:"user"`
}

type statusReq struct {
	Status string `json:"status"`
}

// toEntry resolves the owning account and enum fields of req. The remaining
// field checks are left to LedgerService.Validate.
func (h *EntryHandler) toEntry(ctx context.Context, req *entryReq) (*models.Entry, error) {
	account, err := h.Accounts.GetByID(ctx, req.User)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return nil, service.ErrUnknownAccount
		}
		return nil, err
	}

	e := &models.Entry{
		Description: strings.TrimSpace(req.Description),
		Month:       req.Month,
		Year:        req.Year,
		Amount:      models.NewMoney(req.Amount),
		AccountID:   account.ID,
	}
	if req.Type != "" {
		t, ok := models.ParseEntryType(strings.ToUpper(req.Type))
		if !ok {
			return nil, &service.BusinessRuleError{Msg: service.MsgInvalidType}
		}
		e.Type = t
	}
	if req.Status != "" {
		st, ok := models.ParseEntryStatus(strings.ToUpper(req.Status))
		if !ok {
			return nil, &service.BusinessRuleError{Msg: service.MsgInvalidStatus}
		}
		e.Status = st
	}
	return e, nil
}

// ---------- handlers ----------

// List filters entries by exact description, month and year. The user query
// parameter is mandatory and must name an existing account.
func (h *EntryHandler) List(c *gin.Context) {
	userStr := c.Query("user")
	if userStr == "" {
		badRequest(c, "user is required")
		return
	}
	accountID, err := util.ParseID(userStr)
	if err != nil {
		badRequest(c, "invalid user")
		return
	}
	month, err := util.ParseOptionalMonth(c.Query("month"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	year, err := util.ParseOptionalYear(c.Query("year"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Accounts.GetByID(ctx, accountID); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			respondError(c, service.ErrUnknownAccount)
			return
		}
		respondError(c, err)
		return
	}

	entries, err := h.Ledger.Filter(ctx, models.EntryFilter{
		Description: c.Query("description"),
		Month:       month,
		Year:        year,
		AccountID:   accountID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	util.Success(c, entries)
}

func (h *EntryHandler) Create(c *gin.Context) {
	var req entryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	e, err := h.toEntry(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.Ledger.Create(ctx, e)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, created)
}

// Update replaces every field of an existing entry. A missing status keeps
// the stored one.
func (h *EntryHandler) Update(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid id")
		return
	}

	var req entryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	existing, err := h.Ledger.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	e, err := h.toEntry(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	e.ID = existing.ID
	e.RegisteredAt = existing.RegisteredAt
	e.CreatedAt = existing.CreatedAt
	if e.Status == "" {
		e.Status = existing.Status
	}

	updated, err := h.Ledger.Update(ctx, e)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, updated)
}

func (h *EntryHandler) UpdateStatus(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid id")
		return
	}

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	e, err := h.Ledger.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	status, ok := models.ParseEntryStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !ok {
		badRequest(c, "send a valid status to update the entry")
		return
	}

	updated, err := h.Ledger.SetStatus(ctx, e, status)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, updated)
}

func (h *EntryHandler) Delete(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid id")
		return
	}

	ctx := c.Request.Context()
	e, err := h.Ledger.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Ledger.Delete(ctx, e); err != nil {
		respondError(c, err)
		return
	}
	util.NoContent(c)
}
