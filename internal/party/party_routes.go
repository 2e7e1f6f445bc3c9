package party

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
	parties := r.Group("/parties")
	parties.Use(middleware.AuthMiddleware())
	parties.Use(middleware.ContextLogger(logger))
	{
		parties.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "party", "read"),
			handler.GetAll,
		)

		parties.GET("/options",
			middleware.RateLimitByUser(5, 20),
			rbac.Authorize(rbacService, "party", "read"),
			handler.GetOptions,
		)

		parties.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "party", "read"),
			handler.GetById,
		)

		parties.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "party", "create"),
			handler.Create,
		)

		parties.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "party", "update"),
			handler.Update,
		)

		parties.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "party", "delete"),
			handler.Delete,
		)
	}
}
