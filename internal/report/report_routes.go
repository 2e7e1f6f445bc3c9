package report

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
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.ContextLogger(logger))
	{
		reports.GET("/payroll/monthly",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "report", "read"),
			handler.PayrollByMonth,
		)

		reports.GET("/expenses/by-head",
			middleware.RateLimitByUser(1, 5),
			rbac.Authorize(rbacService, "report", "read"),
			handler.ExpensesByHead,
		)
	}
}
