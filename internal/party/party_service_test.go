package party_test

import (
	"context"
	"testing"

	"go-bizledger/internal/party"
	partyerrors "go-bizledger/internal/party/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakePartyRepository struct {
	createFn             func(ctx context.Context, p *party.Party) error
	findAllByCompanyFn   func(ctx context.Context, companyID, partyType string) ([]party.Party, error)
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*party.Party, error)
	updateFn             func(ctx context.Context, p *party.Party) error
	deleteFn             func(ctx context.Context, companyID, id string) error
}

func (f *fakePartyRepository) Create(ctx context.Context, p *party.Party) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePartyRepository) FindAllByCompany(ctx context.Context, companyID, partyType string) ([]party.Party, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, partyType)
	}
	return nil, nil
}

func (f *fakePartyRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*party.Party, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return &party.Party{}, nil
}

func (f *fakePartyRepository) Update(ctx context.Context, p *party.Party) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func (f *fakePartyRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

func TestPartyServiceCreate(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("creates a customer", func(t *testing.T) {
		var created *party.Party
		repo := &fakePartyRepository{
			createFn: func(ctx context.Context, p *party.Party) error {
				created = p
				return nil
			},
		}
		svc := party.NewService(repo)

		resp, err := svc.Create(context.Background(), companyID, party.CreatePartyRequest{
			Name:      "Sharma Traders",
			PartyType: party.PartyTypeCustomer,
			GSTIN:     "27AAPFU0939F1ZV",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Sharma Traders", created.Name)
		assert.Equal(t, party.PartyTypeCustomer, resp.PartyType)
	})

	t.Run("rejects a GSTIN with a bad check digit", func(t *testing.T) {
		svc := party.NewService(&fakePartyRepository{})

		_, err := svc.Create(context.Background(), companyID, party.CreatePartyRequest{
			Name:      "Sharma Traders",
			PartyType: party.PartyTypeCustomer,
			GSTIN:     "27AAPFU0939F1ZW",
		})
		assert.ErrorIs(t, err, partyerrors.ErrInvalidGSTIN)
	})

	t.Run("GSTIN stays optional", func(t *testing.T) {
		svc := party.NewService(&fakePartyRepository{})

		_, err := svc.Create(context.Background(), companyID, party.CreatePartyRequest{
			Name:      "Cash customer",
			PartyType: party.PartyTypeCustomer,
		})
		assert.NoError(t, err)
	})
}

func TestPartyServiceGetByID(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("maps a missing party to not found", func(t *testing.T) {
		repo := &fakePartyRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*party.Party, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := party.NewService(repo)

		_, err := svc.GetByID(context.Background(), companyID, uuid.NewString())
		assert.ErrorIs(t, err, partyerrors.ErrPartyNotFound)
	})
}
