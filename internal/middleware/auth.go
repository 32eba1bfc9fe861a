package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"debt-control/internal/models"
	"debt-control/internal/service"
	"debt-control/internal/util"

	"github.com/gin-gonic/gin"
)

// CurrentAccountKey is the gin context key holding the authenticated *models.Account.
const CurrentAccountKey = "currentAccount"

// AccountFinder resolves the account named by a token.
type AccountFinder interface {
	GetByID(ctx context.Context, id uint) (*models.Account, error)
}

// AuthMiddleware checks the bearer JWT and stores the account in the context.
func AuthMiddleware(jwtSecret string, accounts AccountFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = strings.TrimSpace(parts[1])
			}
		}

		// ?token=xxx for downloads opened in a browser tab
		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not authenticated")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "session expired, please authenticate again")
			c.Abort()
			return
		}

		account, err := accounts.GetByID(c.Request.Context(), claims.AccountID)
		if err != nil {
			if errors.Is(err, service.ErrAccountNotFound) {
				util.Error(c, http.StatusUnauthorized, util.CodeAuth, "account not found")
			} else {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load account")
			}
			c.Abort()
			return
		}

		c.Set(CurrentAccountKey, account)
		c.Next()
	}
}

// CurrentAccount returns the account put in the context by AuthMiddleware.
func CurrentAccount(c *gin.Context) (*models.Account, bool) {
	v, ok := c.Get(CurrentAccountKey)
	if !ok {
		return nil, false
	}
	account, ok := v.(*models.Account)
	return account, ok && account != nil
}
