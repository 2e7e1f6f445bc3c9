package party

import (
	"context"

	"go-bizledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=party_repo.go -destination=mock/party_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Party) error
	FindAllByCompany(ctx context.Context, companyID string, partyType string) ([]Party, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Party, error)
	Update(ctx context.Context, p *Party) error
	Delete(ctx context.Context, companyID string, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Party) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, partyType string) ([]Party, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if partyType != "" {
		q = q.Where("party_type = ?", partyType)
	}

	var parties []Party
	err := q.Order("name ASC").Find(&parties).Error
	return parties, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Party, error) {
	var p Party
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Party) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Party{}, "id = ?", id).Error
}
