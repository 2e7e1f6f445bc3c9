package company

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
	company := r.Group("/company")
	company.Use(middleware.AuthMiddleware())
	company.Use(middleware.ContextLogger(logger))
	{
		company.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "company", "read"),
			handler.Get,
		)

		company.PUT("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "company", "update"),
			handler.Upsert,
		)
	}
}
