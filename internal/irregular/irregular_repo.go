package irregular

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-bizledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=irregular_repo.go -destination=mock/irregular_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, entry *IrregularPayment) error
	FindAllByCompany(ctx context.Context, companyID string) ([]IrregularPayment, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*IrregularPayment, error)
	ListPendingByEmployee(ctx context.Context, companyID string, employeeID string) ([]IrregularPayment, error)
	MarkApplied(ctx context.Context, companyID string, ids []string, appliedAs string, month string, payDate time.Time) error
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

func (r *repository) Create(ctx context.Context, entry *IrregularPayment) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]IrregularPayment, error) {
	var entries []IrregularPayment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("pay_date DESC, created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*IrregularPayment, error) {
	var entry IrregularPayment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&entry, "id = ?", id).Error
	return &entry, err
}

func (r *repository) ListPendingByEmployee(ctx context.Context, companyID string, employeeID string) ([]IrregularPayment, error) {
	var entries []IrregularPayment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("applied = ?", false).
		Order("pay_date ASC").
		Find(&entries).Error
	return entries, err
}

// ErrStaleEntries means at least one entry was missing or already applied;
// the caller's transaction should roll back.
var ErrStaleEntries = errors.New("irregular payments missing or already applied")

// MarkApplied flips applied entries inside the caller's transaction. Raw SQL
// against the tx keeps the flip atomic with the payroll run insert.
func (r *repository) MarkApplied(
	ctx context.Context,
	companyID string,
	ids []string,
	appliedAs string,
	month string,
	payDate time.Time,
) error {
	if len(ids) == 0 {
		return nil
	}

	args := []any{appliedAs, month, payDate, companyID}
	placeholders := make([]string, len(ids))
	for i, id := range ids {
		args = append(args, id)
		placeholders[i] = fmt.Sprintf("$%d", i+5)
	}

	query := fmt.Sprintf(`
UPDATE irregular_payments
SET
	applied = TRUE,
	applied_as = $1,
	applied_in_month = $2,
	applied_on = $3,
	updated_at = NOW()
WHERE company_id = $4
	AND id IN (%s)
	AND applied = FALSE
`, strings.Join(placeholders, ", "))

	var (
		result sql.Result
		err    error
	)
	if r.tx != nil {
		result, err = r.tx.ExecContext(ctx, query, args...)
	} else {
		sqlDB, dbErr := r.db.DB()
		if dbErr != nil {
			return dbErr
		}
		result, err = sqlDB.ExecContext(ctx, query, args...)
	}
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected != int64(len(ids)) {
		return ErrStaleEntries
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&IrregularPayment{}, "id = ?", id).Error
}
