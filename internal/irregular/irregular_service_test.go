package irregular_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-bizledger/internal/irregular"
	irregularerrors "go-bizledger/internal/irregular/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeIrregularRepository struct {
	withTxFn                func(tx *sql.Tx) irregular.Repository
	createFn                func(ctx context.Context, entry *irregular.IrregularPayment) error
	findAllByCompanyFn      func(ctx context.Context, companyID string) ([]irregular.IrregularPayment, error)
	findByIDAndCompanyFn    func(ctx context.Context, companyID, id string) (*irregular.IrregularPayment, error)
	listPendingByEmployeeFn func(ctx context.Context, companyID, employeeID string) ([]irregular.IrregularPayment, error)
	markAppliedFn           func(ctx context.Context, companyID string, ids []string, appliedAs, month string, payDate time.Time) error
	deleteFn                func(ctx context.Context, companyID, id string) error
}

func (f *fakeIrregularRepository) WithTx(tx *sql.Tx) irregular.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeIrregularRepository) Create(ctx context.Context, entry *irregular.IrregularPayment) error {
	if f.createFn != nil {
		return f.createFn(ctx, entry)
	}
	return nil
}

func (f *fakeIrregularRepository) FindAllByCompany(ctx context.Context, companyID string) ([]irregular.IrregularPayment, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeIrregularRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*irregular.IrregularPayment, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return &irregular.IrregularPayment{}, nil
}

func (f *fakeIrregularRepository) ListPendingByEmployee(ctx context.Context, companyID, employeeID string) ([]irregular.IrregularPayment, error) {
	if f.listPendingByEmployeeFn != nil {
		return f.listPendingByEmployeeFn(ctx, companyID, employeeID)
	}
	return nil, nil
}

func (f *fakeIrregularRepository) MarkApplied(ctx context.Context, companyID string, ids []string, appliedAs, month string, payDate time.Time) error {
	if f.markAppliedFn != nil {
		return f.markAppliedFn(ctx, companyID, ids, appliedAs, month, payDate)
	}
	return nil
}

func (f *fakeIrregularRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

func TestIrregularServiceRecord(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("rejects non-positive amount", func(t *testing.T) {
		svc := irregular.NewService(nil, &fakeIrregularRepository{})

		_, err := svc.Record(context.Background(), companyID, irregular.RecordIrregularPaymentRequest{
			PayDate:     "2026-08-01",
			PersonType:  "LABOUR",
			PersonName:  "Mason crew",
			PaymentType: irregular.TypeAdvance,
			Amount:      0,
		})
		assert.ErrorIs(t, err, irregularerrors.ErrAmountNotPositive)
	})

	t.Run("requires an employee for person type employee", func(t *testing.T) {
		svc := irregular.NewService(nil, &fakeIrregularRepository{})

		_, err := svc.Record(context.Background(), companyID, irregular.RecordIrregularPaymentRequest{
			PayDate:     "2026-08-01",
			PersonType:  "EMPLOYEE",
			PaymentType: irregular.TypeBonus,
			Amount:      2000,
		})
		assert.ErrorIs(t, err, irregularerrors.ErrEmployeeRequired)
	})

	t.Run("creates a pending entry", func(t *testing.T) {
		var created *irregular.IrregularPayment
		repo := &fakeIrregularRepository{
			createFn: func(ctx context.Context, entry *irregular.IrregularPayment) error {
				created = entry
				return nil
			},
		}
		svc := irregular.NewService(nil, repo)

		emplID := uuid.NewString()
		resp, err := svc.Record(context.Background(), companyID, irregular.RecordIrregularPaymentRequest{
			PayDate:     "2026-08-01",
			EmployeeID:  &emplID,
			PersonName:  "Asha Verma",
			PersonType:  "EMPLOYEE",
			PaymentType: irregular.TypeAdvance,
			Amount:      2000,
			PaymentMode: "UPI",
		})
		assert.NoError(t, err)
		assert.False(t, created.Applied)
		assert.Nil(t, created.AppliedAs)
		assert.False(t, resp.Applied)
		assert.Equal(t, emplID, *resp.EmployeeID)
	})
}

func TestIrregularServiceListPending(t *testing.T) {
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("only surfaces unapplied entries", func(t *testing.T) {
		repo := &fakeIrregularRepository{
			listPendingByEmployeeFn: func(ctx context.Context, cid, eid string) ([]irregular.IrregularPayment, error) {
				assert.Equal(t, employeeID, eid)
				// the repo query filters applied = false; the fake returns
				// what a correct query would
				return []irregular.IrregularPayment{
					{ID: uuid.New(), Amount: 2000, Applied: false},
				}, nil
			},
		}
		svc := irregular.NewService(nil, repo)

		resp, err := svc.ListPending(context.Background(), companyID, employeeID)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.False(t, resp[0].Applied)
	})
}

func TestIrregularServiceDelete(t *testing.T) {
	companyID := uuid.NewString()
	id := uuid.NewString()

	t.Run("deletes a pending entry without warning", func(t *testing.T) {
		repo := &fakeIrregularRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, entryID string) (*irregular.IrregularPayment, error) {
				return &irregular.IrregularPayment{ID: uuid.MustParse(id), Applied: false}, nil
			},
		}
		svc := irregular.NewService(nil, repo)

		resp, err := svc.Delete(context.Background(), companyID, id, false)
		assert.NoError(t, err)
		assert.True(t, resp.Deleted)
		assert.Empty(t, resp.Warning)
	})

	t.Run("refuses to delete an applied entry without force", func(t *testing.T) {
		applied := "EARNING"
		repo := &fakeIrregularRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, entryID string) (*irregular.IrregularPayment, error) {
				return &irregular.IrregularPayment{ID: uuid.MustParse(id), Applied: true, AppliedAs: &applied}, nil
			},
		}
		svc := irregular.NewService(nil, repo)

		_, err := svc.Delete(context.Background(), companyID, id, false)
		assert.ErrorIs(t, err, irregularerrors.ErrDeleteAppliedNeedsForce)
	})

	t.Run("force delete of an applied entry surfaces a warning", func(t *testing.T) {
		applied := "EARNING"
		deleted := false
		repo := &fakeIrregularRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, entryID string) (*irregular.IrregularPayment, error) {
				return &irregular.IrregularPayment{ID: uuid.MustParse(id), Applied: true, AppliedAs: &applied}, nil
			},
			deleteFn: func(ctx context.Context, cid, entryID string) error {
				deleted = true
				return nil
			},
		}
		svc := irregular.NewService(nil, repo)

		resp, err := svc.Delete(context.Background(), companyID, id, true)
		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.True(t, resp.Deleted)
		assert.NotEmpty(t, resp.Warning)
	})

	t.Run("maps missing entry to not found", func(t *testing.T) {
		repo := &fakeIrregularRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, entryID string) (*irregular.IrregularPayment, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := irregular.NewService(nil, repo)

		_, err := svc.Delete(context.Background(), companyID, id, false)
		assert.ErrorIs(t, err, irregularerrors.ErrIrregularPaymentNotFound)
	})
}
