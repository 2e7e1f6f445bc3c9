package report

import (
	"context"
	"time"

	"go-bizledger/internal/shared/apperror"

	"go.uber.org/zap"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	PayrollByMonth(ctx context.Context, companyID string) ([]PayrollMonthSummary, error)
	ExpensesByHead(ctx context.Context, companyID string, from, to string) ([]ExpenseHeadSummary, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) PayrollByMonth(ctx context.Context, companyID string) ([]PayrollMonthSummary, error) {
	return s.repo.PayrollByMonth(ctx, companyID)
}

func (s *service) ExpensesByHead(ctx context.Context, companyID string, from, to string) ([]ExpenseHeadSummary, error) {
	var fromDate, toDate *time.Time
	if from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, apperror.InvalidField("From")
		}
		fromDate = &parsed
	}
	if to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, apperror.InvalidField("To")
		}
		toDate = &parsed
	}

	return s.repo.ExpensesByHead(ctx, companyID, fromDate, toDate)
}
