package handler

import (
	"errors"
	"net/http"
	"time"

	"debt-control/internal/models"
	"debt-control/internal/service"
	"debt-control/internal/util"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves registration, authentication and balance lookups.
type AccountHandler struct {
	Accounts  *service.AccountService
	Ledger    *service.LedgerService
	JWTSecret string
	Issuer    string
	TokenTTL  time.Duration
}

func NewAccountHandler(accounts *service.AccountService, ledger *service.LedgerService, jwtSecret, issuer string, ttlHours int) *AccountHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	return &AccountHandler{
		Accounts:  accounts,
		Ledger:    ledger,
		JWTSecret: jwtSecret,
		Issuer:    issuer,
		TokenTTL:  time.Duration(ttlHours) * time.Hour,
	}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	account, err := h.Accounts.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, account)
}

type authenticateReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authenticateResp struct {
	Account *models.Account `json:"account"`
	Token   string          `json:"token"`
}

func (h *AccountHandler) Authenticate(c *gin.Context) {
	var req authenticateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	account, err := h.Accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, h.Issuer, account.ID, h.TokenTTL)
	if err != nil {
		respondError(c, err)
		return
	}

	util.Success(c, authenticateResp{Account: account, Token: token})
}

// Balance answers 404 for an unknown account, otherwise the decimal balance.
func (h *AccountHandler) Balance(c *gin.Context) {
	id, err := util.ParseID(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid id")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Accounts.GetByID(ctx, id); err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "account not found")
			return
		}
		respondError(c, err)
		return
	}

	balance, err := h.Ledger.Balance(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, balance)
}
