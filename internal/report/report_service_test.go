package report_test

import (
	"context"
	"testing"
	"time"

	"go-bizledger/internal/report"

	"github.com/stretchr/testify/assert"
)

type fakeReportRepository struct {
	payroll  []report.PayrollMonthSummary
	expenses []report.ExpenseHeadSummary

	gotFrom *time.Time
	gotTo   *time.Time
}

func (f *fakeReportRepository) PayrollByMonth(ctx context.Context, companyID string) ([]report.PayrollMonthSummary, error) {
	return f.payroll, nil
}

func (f *fakeReportRepository) ExpensesByHead(ctx context.Context, companyID string, from, to *time.Time) ([]report.ExpenseHeadSummary, error) {
	f.gotFrom = from
	f.gotTo = to
	return f.expenses, nil
}

func TestPayrollByMonth_PassesThroughAggregates(t *testing.T) {
	repo := &fakeReportRepository{
		payroll: []report.PayrollMonthSummary{
			{Month: "2025-04", RunCount: 3, TotalEarnings: 119886, TotalDeductions: 3000, NetAmount: 116886},
		},
	}
	svc := report.NewService(repo)

	got, err := svc.PayrollByMonth(context.Background(), "company-1")

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "2025-04", got[0].Month)
	assert.Equal(t, 116886.0, got[0].NetAmount)
}

func TestExpensesByHead_ParsesDateRange(t *testing.T) {
	repo := &fakeReportRepository{
		expenses: []report.ExpenseHeadSummary{
			{Head: "Rent", Category: "FIXED", EntryCount: 2, TotalAmount: 30000},
		},
	}
	svc := report.NewService(repo)

	got, err := svc.ExpensesByHead(context.Background(), "company-1", "2025-04-01", "2025-04-30")

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	if assert.NotNil(t, repo.gotFrom) {
		assert.Equal(t, "2025-04-01", repo.gotFrom.Format("2006-01-02"))
	}
	if assert.NotNil(t, repo.gotTo) {
		assert.Equal(t, "2025-04-30", repo.gotTo.Format("2006-01-02"))
	}
}

func TestExpensesByHead_EmptyRangeMeansUnbounded(t *testing.T) {
	repo := &fakeReportRepository{}
	svc := report.NewService(repo)

	_, err := svc.ExpensesByHead(context.Background(), "company-1", "", "")

	assert.NoError(t, err)
	assert.Nil(t, repo.gotFrom)
	assert.Nil(t, repo.gotTo)
}

func TestExpensesByHead_RejectsMalformedDate(t *testing.T) {
	svc := report.NewService(&fakeReportRepository{})

	_, err := svc.ExpensesByHead(context.Background(), "company-1", "04/01/2025", "")

	assert.Error(t, err)
}
