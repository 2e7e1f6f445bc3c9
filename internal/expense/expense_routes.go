package expense

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
	expenses := r.Group("/expenses")
	expenses.Use(middleware.AuthMiddleware())
	expenses.Use(middleware.ContextLogger(logger))
	{
		expenses.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "expense", "read"),
			handler.GetAll,
		)

		expenses.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "expense", "read"),
			handler.GetById,
		)

		expenses.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "expense", "create"),
			handler.Create,
		)

		expenses.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "expense", "update"),
			handler.Update,
		)

		expenses.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "expense", "delete"),
			handler.Delete,
		)
	}
}
