package company

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=company_repo.go -destination=mock/company_repo_mock.go -package=mock
type Repository interface {
	FindByCompany(ctx context.Context, companyID string) (*Company, error)
	Save(ctx context.Context, c *Company) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByCompany(ctx context.Context, companyID string) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).
		First(&c, "company_id = ?", companyID).Error
	return &c, err
}

func (r *repository) Save(ctx context.Context, c *Company) error {
	return r.db.WithContext(ctx).Save(c).Error
}
