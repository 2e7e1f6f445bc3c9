package backup

import (
	"context"

	"go-bizledger/internal/company"
	"go-bizledger/internal/employee"
	"go-bizledger/internal/expense"
	"go-bizledger/internal/invoice"
	"go-bizledger/internal/irregular"
	"go-bizledger/internal/party"
	"go-bizledger/internal/payrollrun"
	"go-bizledger/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository reads and writes whole collections for one tenant. Save is an
// upsert on the primary key so restore keeps original document ids.
type Repository interface {
	Employees(ctx context.Context, companyID string) ([]employee.Employee, error)
	IrregularPayments(ctx context.Context, companyID string) ([]irregular.IrregularPayment, error)
	PayrollRuns(ctx context.Context, companyID string) ([]payrollrun.PayrollRun, error)
	Expenses(ctx context.Context, companyID string) ([]expense.Expense, error)
	Parties(ctx context.Context, companyID string) ([]party.Party, error)
	Invoices(ctx context.Context, companyID string) ([]invoice.Invoice, error)
	CompanyDetails(ctx context.Context, companyID string) (*company.Company, error)

	SaveEmployee(ctx context.Context, e *employee.Employee) error
	SaveIrregularPayment(ctx context.Context, e *irregular.IrregularPayment) error
	SavePayrollRun(ctx context.Context, e *payrollrun.PayrollRun) error
	SaveExpense(ctx context.Context, e *expense.Expense) error
	SaveParty(ctx context.Context, e *party.Party) error
	SaveInvoice(ctx context.Context, e *invoice.Invoice) error
	SaveCompanyDetails(ctx context.Context, e *company.Company) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func listScoped[T any](ctx context.Context, db *gorm.DB, companyID string) ([]T, error) {
	var records []T
	err := db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func upsert[T any](ctx context.Context, db *gorm.DB, record *T) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(record).Error
}

func (r *repository) Employees(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return listScoped[employee.Employee](ctx, r.db, companyID)
}

func (r *repository) IrregularPayments(ctx context.Context, companyID string) ([]irregular.IrregularPayment, error) {
	return listScoped[irregular.IrregularPayment](ctx, r.db, companyID)
}

func (r *repository) PayrollRuns(ctx context.Context, companyID string) ([]payrollrun.PayrollRun, error) {
	return listScoped[payrollrun.PayrollRun](ctx, r.db, companyID)
}

func (r *repository) Expenses(ctx context.Context, companyID string) ([]expense.Expense, error) {
	return listScoped[expense.Expense](ctx, r.db, companyID)
}

func (r *repository) Parties(ctx context.Context, companyID string) ([]party.Party, error) {
	return listScoped[party.Party](ctx, r.db, companyID)
}

func (r *repository) Invoices(ctx context.Context, companyID string) ([]invoice.Invoice, error) {
	return listScoped[invoice.Invoice](ctx, r.db, companyID)
}

func (r *repository) CompanyDetails(ctx context.Context, companyID string) (*company.Company, error) {
	var c company.Company
	err := r.db.WithContext(ctx).
		First(&c, "company_id = ?", companyID).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) SaveEmployee(ctx context.Context, e *employee.Employee) error {
	return upsert(ctx, r.db, e)
}

func (r *repository) SaveIrregularPayment(ctx context.Context, e *irregular.IrregularPayment) error {
	return upsert(ctx, r.db, e)
}

func (r *repository) SavePayrollRun(ctx context.Context, e *payrollrun.PayrollRun) error {
	return upsert(ctx, r.db, e)
}

func (r *repository) SaveExpense(ctx context.Context, e *expense.Expense) error {
	return upsert(ctx, r.db, e)
}

func (r *repository) SaveParty(ctx context.Context, e *party.Party) error {
	return upsert(ctx, r.db, e)
}

func (r *repository) SaveInvoice(ctx context.Context, e *invoice.Invoice) error {
	return upsert(ctx, r.db, e)
}

func (r *repository) SaveCompanyDetails(ctx context.Context, e *company.Company) error {
	return upsert(ctx, r.db, e)
}
