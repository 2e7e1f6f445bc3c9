package irregular

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
	payments := r.Group("/irregular-payments")
	payments.Use(middleware.AuthMiddleware())
	payments.Use(middleware.ContextLogger(logger))
	{
		payments.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "irregular-payment", "read"),
			handler.GetAll,
		)

		payments.GET("/pending/:employeeId",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "irregular-payment", "read"),
			handler.ListPending,
		)

		payments.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "irregular-payment", "create"),
			handler.Record,
		)

		payments.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "irregular-payment", "delete"),
			handler.Delete,
		)
	}
}
