package company_test

import (
	"context"
	"testing"

	"go-bizledger/internal/company"
	companyerrors "go-bizledger/internal/company/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeCompanyRepository struct {
	stored *company.Company
	saveFn func(ctx context.Context, c *company.Company) error
}

func (f *fakeCompanyRepository) FindByCompany(ctx context.Context, companyID string) (*company.Company, error) {
	if f.stored == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.stored, nil
}

func (f *fakeCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, c)
	}
	f.stored = c
	return nil
}

func TestCompanyServiceUpsert(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("first save creates the profile", func(t *testing.T) {
		repo := &fakeCompanyRepository{}
		svc := company.NewService(repo)

		resp, err := svc.Upsert(context.Background(), companyID, company.UpsertCompanyRequest{
			Name:  "Verma Constructions",
			GSTIN: "27AAPFU0939F1ZV",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Verma Constructions", resp.Name)
		assert.NotNil(t, repo.stored)
	})

	t.Run("second save overwrites in place", func(t *testing.T) {
		repo := &fakeCompanyRepository{}
		svc := company.NewService(repo)

		_, err := svc.Upsert(context.Background(), companyID, company.UpsertCompanyRequest{Name: "Old name"})
		assert.NoError(t, err)
		firstID := repo.stored.ID

		resp, err := svc.Upsert(context.Background(), companyID, company.UpsertCompanyRequest{Name: "New name"})
		assert.NoError(t, err)
		assert.Equal(t, "New name", resp.Name)
		assert.Equal(t, firstID, repo.stored.ID)
	})

	t.Run("rejects an invalid GSTIN", func(t *testing.T) {
		svc := company.NewService(&fakeCompanyRepository{})

		_, err := svc.Upsert(context.Background(), companyID, company.UpsertCompanyRequest{
			Name:  "Verma Constructions",
			GSTIN: "not-a-gstin",
		})
		assert.ErrorIs(t, err, companyerrors.ErrInvalidGSTIN)
	})
}

func TestCompanyServiceGet(t *testing.T) {
	t.Run("missing profile maps to not found", func(t *testing.T) {
		svc := company.NewService(&fakeCompanyRepository{})

		_, err := svc.Get(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, companyerrors.ErrCompanyProfileNotFound)
	})
}
