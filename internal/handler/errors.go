package handler

import (
	"errors"
	"net/http"

	"debt-control/internal/service"
	"debt-control/internal/util"

	"github.com/gin-gonic/gin"
)

const msgInternal = "internal server error"

// respondError maps service errors onto the response envelope. Rule and
// authentication failures are shown to the client; anything unexpected is
// attached to the gin context for the request logger and hidden behind a
// generic message.
func respondError(c *gin.Context, err error) {
	var rule *service.BusinessRuleError
	var authErr *service.AuthenticationError

	switch {
	case errors.As(err, &rule):
		util.Error(c, http.StatusBadRequest, util.CodeBusinessRule, rule.Msg)
	case errors.As(err, &authErr):
		util.Error(c, http.StatusBadRequest, util.CodeAuth, authErr.Msg)
	case errors.Is(err, service.ErrEntryNotFound):
		util.Error(c, http.StatusBadRequest, util.CodeNotFound, "entry not found")
	default:
		_ = c.Error(err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, msgInternal)
	}
}

func badRequest(c *gin.Context, msg string) {
	util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
}
