package invoice

import (
	"go-bizledger/internal/middleware"
	"go-bizledger/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	invoices := r.Group("/invoices")
	invoices.Use(middleware.AuthMiddleware())
	invoices.Use(middleware.ContextLogger(logger))
	{
		invoices.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "invoice", "read"),
			handler.GetAll,
		)

		invoices.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "invoice", "read"),
			handler.GetById,
		)

		// a retry must not burn a second invoice number
		invoices.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(rdb),
			rbac.Authorize(rbacService, "invoice", "create"),
			handler.Create,
		)

		invoices.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "invoice", "update"),
			handler.Update,
		)

		invoices.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "invoice", "delete"),
			handler.Delete,
		)
	}
}
