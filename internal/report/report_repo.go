package report

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	PayrollByMonth(ctx context.Context, companyID string) ([]PayrollMonthSummary, error)
	ExpensesByHead(ctx context.Context, companyID string, from, to *time.Time) ([]ExpenseHeadSummary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) PayrollByMonth(ctx context.Context, companyID string) ([]PayrollMonthSummary, error) {
	var summaries []PayrollMonthSummary
	err := r.db.WithContext(ctx).
		Table("payroll_runs").
		Select(`
			month,
			COUNT(*) AS run_count,
			SUM(total_earnings) AS total_earnings,
			SUM(total_deductions) AS total_deductions,
			SUM(net_amount) AS net_amount`).
		Where("company_id = ?", companyID).
		Group("month").
		Order("MIN(pay_date) DESC").
		Scan(&summaries).Error
	return summaries, err
}

func (r *repository) ExpensesByHead(ctx context.Context, companyID string, from, to *time.Time) ([]ExpenseHeadSummary, error) {
	q := r.db.WithContext(ctx).
		Table("expenses").
		Select(`
			head,
			category,
			COUNT(*) AS entry_count,
			SUM(amount) AS total_amount`).
		Where("company_id = ?", companyID)
	if from != nil {
		q = q.Where("expense_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("expense_date <= ?", *to)
	}

	var summaries []ExpenseHeadSummary
	err := q.Group("head, category").
		Order("total_amount DESC").
		Scan(&summaries).Error
	return summaries, err
}
