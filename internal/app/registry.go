package app

import (
	"database/sql"
	"go-bizledger/internal/backup"
	"go-bizledger/internal/company"
	"go-bizledger/internal/employee"
	"go-bizledger/internal/expense"
	"go-bizledger/internal/invoice"
	"go-bizledger/internal/irregular"
	"go-bizledger/internal/messaging/kafka"
	"go-bizledger/internal/party"
	"go-bizledger/internal/payrollrun"
	"go-bizledger/internal/rbac"
	"go-bizledger/internal/rbac/infra"
	"go-bizledger/internal/report"
	"go-bizledger/internal/shared/counter"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	backupRepo := backup.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	invoiceRepo := invoice.NewRepository(gormDB)
	irregularRepo := irregular.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	partyRepo := party.NewRepository(gormDB)
	payrollRunRepo := payrollrun.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	backupService := backup.NewService(backupRepo, logger)
	companyService := company.NewService(companyRepo, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	expenseService := expense.NewService(expenseRepo, logger)
	invoiceService := invoice.NewService(db, invoiceRepo, partyRepo, counterRepo, logger)
	irregularService := irregular.NewService(db, irregularRepo, logger)
	partyService := party.NewService(partyRepo, logger)
	payrollRunService := payrollrun.NewService(db, payrollRunRepo, employeeRepo, irregularRepo, outboxRepo, logger)
	reportService := report.NewService(reportRepo, logger)

	// --- Handlers ---
	backupHandler := backup.NewHandler(backupService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	expenseHandler := expense.NewHandler(expenseService, logger)
	invoiceHandler := invoice.NewHandler(invoiceService, logger)
	irregularHandler := irregular.NewHandler(irregularService, logger)
	partyHandler := party.NewHandler(partyService, logger)
	payrollRunHandler := payrollrun.NewHandler(payrollRunService, logger)
	reportHandler := report.NewHandler(reportService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		backup.RegisterRoutes(api, backupHandler, rbacService, logger)
		company.RegisterRoutes(api, companyHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		expense.RegisterRoutes(api, expenseHandler, rbacService, logger)
		invoice.RegisterRoutes(api, invoiceHandler, rbacService, rdb, logger)
		irregular.RegisterRoutes(api, irregularHandler, rbacService, logger)
		party.RegisterRoutes(api, partyHandler, rbacService, logger)
		payrollrun.RegisterRoutes(api, payrollRunHandler, rbacService, rdb, logger)
		report.RegisterRoutes(api, reportHandler, rbacService, logger)
	}

	return nil
}
