package expense

import (
	"context"
	"time"

	"go-bizledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=expense_repo.go -destination=mock/expense_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, exp *Expense) error
	FindAllByCompany(ctx context.Context, companyID string, from, to *time.Time) ([]Expense, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Expense, error)
	Update(ctx context.Context, exp *Expense) error
	Delete(ctx context.Context, companyID string, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, exp *Expense) error {
	return r.db.WithContext(ctx).Create(exp).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, from, to *time.Time) ([]Expense, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if from != nil {
		q = q.Where("expense_date >= ?", *from)
	}
	if to != nil {
		q = q.Where("expense_date <= ?", *to)
	}

	var expenses []Expense
	err := q.Order("expense_date DESC, created_at DESC").Find(&expenses).Error
	return expenses, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Expense, error) {
	var exp Expense
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&exp, "id = ?", id).Error
	return &exp, err
}

func (r *repository) Update(ctx context.Context, exp *Expense) error {
	return r.db.WithContext(ctx).Save(exp).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Expense{}, "id = ?", id).Error
}
