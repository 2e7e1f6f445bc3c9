package backup

import (
	"go-bizledger/internal/middleware"
	"go-bizledger/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	backups := r.Group("/backup")
	backups.Use(middleware.AuthMiddleware())
	backups.Use(middleware.ContextLogger(logger))
	{
		backups.GET("/export",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(rbacService, "backup", "read"),
			handler.Export,
		)

		backups.POST("/restore",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "backup", "create"),
			handler.Restore,
		)
	}
}
