package backup_test

import (
	"context"
	"testing"
	"time"

	"go-bizledger/internal/backup"
	"go-bizledger/internal/company"
	"go-bizledger/internal/employee"
	"go-bizledger/internal/expense"
	"go-bizledger/internal/invoice"
	"go-bizledger/internal/irregular"
	"go-bizledger/internal/party"
	"go-bizledger/internal/payrollrun"

	backuperrors "go-bizledger/internal/backup/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeBackupStore keeps whole collections in memory, keyed by record id,
// standing in for the tenant's database.
type fakeBackupStore struct {
	employees  map[uuid.UUID]employee.Employee
	irregulars map[uuid.UUID]irregular.IrregularPayment
	runs       map[uuid.UUID]payrollrun.PayrollRun
	expenses   map[uuid.UUID]expense.Expense
	parties    map[uuid.UUID]party.Party
	invoices   map[uuid.UUID]invoice.Invoice
	details    *company.Company
}

func newFakeBackupStore() *fakeBackupStore {
	return &fakeBackupStore{
		employees:  map[uuid.UUID]employee.Employee{},
		irregulars: map[uuid.UUID]irregular.IrregularPayment{},
		runs:       map[uuid.UUID]payrollrun.PayrollRun{},
		expenses:   map[uuid.UUID]expense.Expense{},
		parties:    map[uuid.UUID]party.Party{},
		invoices:   map[uuid.UUID]invoice.Invoice{},
	}
}

func (f *fakeBackupStore) Employees(ctx context.Context, companyID string) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeBackupStore) IrregularPayments(ctx context.Context, companyID string) ([]irregular.IrregularPayment, error) {
	out := make([]irregular.IrregularPayment, 0, len(f.irregulars))
	for _, e := range f.irregulars {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeBackupStore) PayrollRuns(ctx context.Context, companyID string) ([]payrollrun.PayrollRun, error) {
	out := make([]payrollrun.PayrollRun, 0, len(f.runs))
	for _, e := range f.runs {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeBackupStore) Expenses(ctx context.Context, companyID string) ([]expense.Expense, error) {
	out := make([]expense.Expense, 0, len(f.expenses))
	for _, e := range f.expenses {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeBackupStore) Parties(ctx context.Context, companyID string) ([]party.Party, error) {
	out := make([]party.Party, 0, len(f.parties))
	for _, e := range f.parties {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeBackupStore) Invoices(ctx context.Context, companyID string) ([]invoice.Invoice, error) {
	out := make([]invoice.Invoice, 0, len(f.invoices))
	for _, e := range f.invoices {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeBackupStore) CompanyDetails(ctx context.Context, companyID string) (*company.Company, error) {
	if f.details == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.details, nil
}

func (f *fakeBackupStore) SaveEmployee(ctx context.Context, e *employee.Employee) error {
	f.employees[e.ID] = *e
	return nil
}

func (f *fakeBackupStore) SaveIrregularPayment(ctx context.Context, e *irregular.IrregularPayment) error {
	f.irregulars[e.ID] = *e
	return nil
}

func (f *fakeBackupStore) SavePayrollRun(ctx context.Context, e *payrollrun.PayrollRun) error {
	f.runs[e.ID] = *e
	return nil
}

func (f *fakeBackupStore) SaveExpense(ctx context.Context, e *expense.Expense) error {
	f.expenses[e.ID] = *e
	return nil
}

func (f *fakeBackupStore) SaveParty(ctx context.Context, e *party.Party) error {
	f.parties[e.ID] = *e
	return nil
}

func (f *fakeBackupStore) SaveInvoice(ctx context.Context, e *invoice.Invoice) error {
	f.invoices[e.ID] = *e
	return nil
}

func (f *fakeBackupStore) SaveCompanyDetails(ctx context.Context, e *company.Company) error {
	f.details = e
	return nil
}

func TestBackupRoundTrip(t *testing.T) {
	companyID := uuid.New()

	source := newFakeBackupStore()

	empl := employee.Employee{
		ID:             uuid.New(),
		CompanyID:      companyID,
		EmployeeNumber: "EMP001",
		FullName:       "Asha Verma",
		BasicAnnual:    240000,
		HRA:            employee.SalaryInput{Value: 40, Mode: employee.ModePercent},
	}
	empl.RecomputeSalary()
	source.employees[empl.ID] = empl

	run := payrollrun.PayrollRun{
		ID:           uuid.New(),
		CompanyID:    companyID,
		EmployeeID:   empl.ID,
		EmployeeName: empl.FullName,
		PayDate:      time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Month:        "August 2026",
		FixedRows: payrollrun.FixedRowList{
			{Component: "Basic Salary", Amount: 20000, Remark: "Fixed Component"},
		},
		TotalEarnings:   20000,
		TotalDeductions: 0,
		NetAmount:       20000,
	}
	source.runs[run.ID] = run

	svc := backup.NewService(source)

	archive, err := svc.Export(context.Background(), companyID.String())
	assert.NoError(t, err)
	assert.Equal(t, companyID.String(), archive.Meta.CompanyID)
	assert.Len(t, archive.Collections[backup.CollectionEmployees], 1)
	assert.Len(t, archive.Collections[backup.CollectionPayrollRuns], 1)

	// restore onto an empty store, as on a fresh device
	target := newFakeBackupStore()
	restoreSvc := backup.NewService(target)

	summary, err := restoreSvc.Restore(context.Background(), companyID.String(), archive)
	assert.NoError(t, err)
	assert.Equal(t, 1, summary.Restored[backup.CollectionPayrollRuns])

	restored, ok := target.runs[run.ID]
	assert.True(t, ok, "payroll run keeps its original document id")
	assert.Equal(t, run.EmployeeID, restored.EmployeeID)
	assert.Equal(t, run.TotalEarnings, restored.TotalEarnings)
	assert.Equal(t, run.NetAmount, restored.NetAmount)
	assert.Equal(t, run.FixedRows, restored.FixedRows)

	// the run's employee reference still resolves after the round trip
	_, ok = target.employees[restored.EmployeeID]
	assert.True(t, ok)
}

func TestBackupRestoreGuards(t *testing.T) {
	companyID := uuid.NewString()
	svc := backup.NewService(newFakeBackupStore())

	t.Run("rejects an archive for another company", func(t *testing.T) {
		archive := backup.Archive{
			Meta: backup.Meta{CompanyID: uuid.NewString(), FormatVersion: 1},
		}
		_, err := svc.Restore(context.Background(), companyID, archive)
		assert.ErrorIs(t, err, backuperrors.ErrArchiveCompanyMismatch)
	})

	t.Run("rejects an unknown format version", func(t *testing.T) {
		archive := backup.Archive{
			Meta: backup.Meta{CompanyID: companyID, FormatVersion: 99},
		}
		_, err := svc.Restore(context.Background(), companyID, archive)
		assert.ErrorIs(t, err, backuperrors.ErrUnsupportedFormatVersion)
	})
}
