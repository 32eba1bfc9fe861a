package handler

import (
	"net/http"

	"debt-control/internal/middleware"
	"debt-control/internal/service"
	"debt-control/internal/util"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the authenticated account's own data.
type ProfileHandler struct {
	Accounts *service.AccountService
}

func NewProfileHandler(accounts *service.AccountService) *ProfileHandler {
	return &ProfileHandler{Accounts: accounts}
}

type updateProfileReq struct {
	Name string `json:"name" binding:"required,max=128"`
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=64"`
}

// GetMe returns the current account (requires AuthMiddleware).
func (h *ProfileHandler) GetMe(c *gin.Context) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not authenticated")
		return
	}
	util.Success(c, account)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not authenticated")
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	updated, err := h.Accounts.UpdateName(c.Request.Context(), account.ID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, updated)
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	account, ok := middleware.CurrentAccount(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not authenticated")
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	if err := h.Accounts.ChangePassword(c.Request.Context(), account.ID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, util.Response{
		"message": "password changed, authenticate again with the new password",
	})
}
