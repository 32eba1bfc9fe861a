package router

import (
	"net/http"

	"debt-control/internal/config"
	"debt-control/internal/handler"
	"debt-control/internal/log"
	"debt-control/internal/middleware"
	"debt-control/internal/repository"
	"debt-control/internal/service"
	"debt-control/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter builds the services on top of db and wires every route.
func SetupRouter(cfg *config.Config, db *gorm.DB, logger *log.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	accountSvc := service.NewAccountService(repository.NewAccountRepository(db), cfg.Security.BcryptCost, logger)
	ledgerSvc := service.NewLedgerService(repository.NewEntryRepository(db), logger)
	auditRepo := repository.NewAuditRepository(db)

	r.GET("/healthz", func(c *gin.Context) {
		util.Success(c, util.Response{"status": "ok"})
	})
	r.NoRoute(func(c *gin.Context) {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "route not found")
	})

	api := r.Group("/api")
	api.Use(middleware.AuditMiddleware(auditRepo))

	accountHandler := handler.NewAccountHandler(accountSvc, ledgerSvc, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpireHours)
	api.POST("/accounts", accountHandler.Register)
	api.POST("/accounts/authenticate", accountHandler.Authenticate)
	api.GET("/accounts/:id/balance", accountHandler.Balance)

	entryHandler := handler.NewEntryHandler(ledgerSvc, accountSvc)
	api.GET("/entries", entryHandler.List)
	api.POST("/entries", entryHandler.Create)
	api.PUT("/entries/:id", entryHandler.Update)
	api.PUT("/entries/:id/status", entryHandler.UpdateStatus)
	api.DELETE("/entries/:id", entryHandler.Delete)

	// authenticated
	me := api.Group("/me")
	me.Use(middleware.AuthMiddleware(cfg.JWT.Secret, accountSvc))

	profileHandler := handler.NewProfileHandler(accountSvc)
	me.GET("", profileHandler.GetMe)
	me.PUT("", profileHandler.UpdateProfile)
	me.POST("/password", profileHandler.ChangePassword)

	logHandler := handler.NewLogHandler(auditRepo, cfg.App.PageSize)
	me.GET("/logs", logHandler.ListLogs)

	exportHandler := handler.NewExportHandler(ledgerSvc)
	me.GET("/statement", exportHandler.Statement)

	return r
}
