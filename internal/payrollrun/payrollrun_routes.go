package payrollrun

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
	runs := r.Group("/payroll-runs")
	runs.Use(middleware.AuthMiddleware())
	runs.Use(middleware.ContextLogger(logger))
	{
		runs.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "payroll-run", "read"),
			handler.GetAll,
		)

		runs.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "payroll-run", "read"),
			handler.GetById,
		)

		// a retried commit must not record the same salary payment twice
		runs.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(rdb),
			rbac.Authorize(rbacService, "payroll-run", "create"),
			handler.Create,
		)

		runs.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "payroll-run", "update"),
			handler.Update,
		)

		runs.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			rbac.Authorize(rbacService, "payroll-run", "delete"),
			handler.Delete,
		)
	}
}
