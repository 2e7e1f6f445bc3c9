package payrollrun

import (
	"context"
	"database/sql"

	"go-bizledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payrollrun_repo.go -destination=mock/payrollrun_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, run *PayrollRun) error
	FindAllByCompany(ctx context.Context, companyID string) ([]PayrollRun, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollRun, error)
	Update(ctx context.Context, run *PayrollRun) error
	Delete(ctx context.Context, companyID string, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// Create inserts the run on the caller's transaction when one is attached,
// so the insert commits or rolls back together with the irregular-payment
// flips and the outbox row.
func (r *repository) Create(ctx context.Context, run *PayrollRun) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).Create(run).Error
	}

	query := `
INSERT INTO payroll_runs (
	id, company_id, employee_id, employee_name, employee_post,
	pay_date, month, payment_mode,
	fixed_rows, performance_rows, deductions, irregular_applied,
	total_earnings, total_deductions, net_amount,
	created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW()
)
`
	_, err := r.tx.ExecContext(
		ctx, query,
		run.ID, run.CompanyID, run.EmployeeID, run.EmployeeName, run.EmployeePost,
		run.PayDate, run.Month, run.PaymentMode,
		run.FixedRows, run.PerformanceRows, run.Deductions, run.IrregularApplied,
		run.TotalEarnings, run.TotalDeductions, run.NetAmount,
	)
	return err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]PayrollRun, error) {
	var runs []PayrollRun
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("pay_date DESC, created_at DESC").
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	for i := range runs {
		runs[i].normalizeRows()
	}
	return runs, nil
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	run.normalizeRows()
	return &run, nil
}

func (r *repository) Update(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&PayrollRun{}, "id = ?", id).Error
}
