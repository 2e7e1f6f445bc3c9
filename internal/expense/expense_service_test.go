package expense_test

import (
	"context"
	"testing"
	"time"

	"go-bizledger/internal/expense"
	expenseerrors "go-bizledger/internal/expense/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeExpenseRepository struct {
	createFn             func(ctx context.Context, exp *expense.Expense) error
	findAllByCompanyFn   func(ctx context.Context, companyID string, from, to *time.Time) ([]expense.Expense, error)
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*expense.Expense, error)
	updateFn             func(ctx context.Context, exp *expense.Expense) error
	deleteFn             func(ctx context.Context, companyID, id string) error
}

func (f *fakeExpenseRepository) Create(ctx context.Context, exp *expense.Expense) error {
	if f.createFn != nil {
		return f.createFn(ctx, exp)
	}
	return nil
}

func (f *fakeExpenseRepository) FindAllByCompany(ctx context.Context, companyID string, from, to *time.Time) ([]expense.Expense, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, from, to)
	}
	return nil, nil
}

func (f *fakeExpenseRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*expense.Expense, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return &expense.Expense{}, nil
}

func (f *fakeExpenseRepository) Update(ctx context.Context, exp *expense.Expense) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, exp)
	}
	return nil
}

func (f *fakeExpenseRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

func TestExpenseServiceCreate(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("creates a ledger row", func(t *testing.T) {
		var created *expense.Expense
		repo := &fakeExpenseRepository{
			createFn: func(ctx context.Context, exp *expense.Expense) error {
				created = exp
				return nil
			},
		}
		svc := expense.NewService(repo)

		resp, err := svc.Create(context.Background(), companyID, expense.CreateExpenseRequest{
			ExpenseDate: "2026-08-15",
			Head:        "Electricity",
			Category:    expense.CategoryFixed,
			Amount:      4200,
			PaymentMode: "BANK_TRANSFER",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Electricity", created.Head)
		assert.Equal(t, expense.CategoryFixed, resp.Category)
		assert.Equal(t, "2026-08-15", resp.ExpenseDate)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		svc := expense.NewService(&fakeExpenseRepository{})

		_, err := svc.Create(context.Background(), companyID, expense.CreateExpenseRequest{
			ExpenseDate: "15-08-2026",
			Head:        "Electricity",
			Category:    expense.CategoryFixed,
			Amount:      4200,
		})
		assert.Error(t, err)
	})
}

func TestExpenseServiceGetAll(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("passes the date range to the repository", func(t *testing.T) {
		var gotFrom, gotTo *time.Time
		repo := &fakeExpenseRepository{
			findAllByCompanyFn: func(ctx context.Context, cid string, from, to *time.Time) ([]expense.Expense, error) {
				gotFrom, gotTo = from, to
				return nil, nil
			},
		}
		svc := expense.NewService(repo)

		_, err := svc.GetAll(context.Background(), companyID, "2026-08-01", "2026-08-31")
		assert.NoError(t, err)
		assert.Equal(t, "2026-08-01", gotFrom.Format("2006-01-02"))
		assert.Equal(t, "2026-08-31", gotTo.Format("2006-01-02"))
	})
}

func TestExpenseServiceDelete(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("maps a missing row to not found", func(t *testing.T) {
		repo := &fakeExpenseRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*expense.Expense, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := expense.NewService(repo)

		err := svc.Delete(context.Background(), companyID, uuid.NewString())
		assert.ErrorIs(t, err, expenseerrors.ErrExpenseNotFound)
	})
}
