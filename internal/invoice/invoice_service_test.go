package invoice_test

import (
	"context"
	"database/sql"
	"testing"

	"go-bizledger/internal/invoice"
	"go-bizledger/internal/party"

	invoiceerrors "go-bizledger/internal/invoice/errors"
	partyerrors "go-bizledger/internal/party/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeInvoiceRepository struct {
	createFn             func(ctx context.Context, inv *invoice.Invoice) error
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*invoice.Invoice, error)
	updateFn             func(ctx context.Context, inv *invoice.Invoice) error
}

func (f *fakeInvoiceRepository) WithTx(tx *sql.Tx) invoice.Repository { return f }

func (f *fakeInvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	if f.createFn != nil {
		return f.createFn(ctx, inv)
	}
	return nil
}

func (f *fakeInvoiceRepository) FindAllByCompany(ctx context.Context, companyID, status string) ([]invoice.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoiceRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*invoice.Invoice, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return &invoice.Invoice{}, nil
}

func (f *fakeInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, inv)
	}
	return nil
}

func (f *fakeInvoiceRepository) Delete(ctx context.Context, companyID, id string) error { return nil }

type fakePartyLookup struct {
	party *party.Party
	err   error
}

func (f *fakePartyLookup) Create(ctx context.Context, p *party.Party) error { return nil }

func (f *fakePartyLookup) FindAllByCompany(ctx context.Context, companyID, partyType string) ([]party.Party, error) {
	return nil, nil
}

func (f *fakePartyLookup) FindByIDAndCompany(ctx context.Context, companyID, id string) (*party.Party, error) {
	return f.party, f.err
}

func (f *fakePartyLookup) Update(ctx context.Context, p *party.Party) error { return nil }

func (f *fakePartyLookup) Delete(ctx context.Context, companyID, id string) error { return nil }

type fakeInvoiceCounter struct {
	next int64
}

func (f *fakeInvoiceCounter) GetNextValue(ctx context.Context, companyID, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func TestInvoiceServiceCreate(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("numbers the invoice and computes totals server-side", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		customer := &party.Party{ID: uuid.New(), Name: "Sharma Traders", PartyType: party.PartyTypeCustomer}
		var created *invoice.Invoice
		repo := &fakeInvoiceRepository{
			createFn: func(ctx context.Context, inv *invoice.Invoice) error {
				created = inv
				return nil
			},
		}
		svc := invoice.NewService(db, repo, &fakePartyLookup{party: customer}, &fakeInvoiceCounter{})

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		resp, err := svc.Create(context.Background(), companyID, invoice.CreateInvoiceRequest{
			PartyID:     customer.ID.String(),
			InvoiceDate: "2026-08-20",
			Items: []invoice.LineItemRequest{
				{Description: "Cement bags", Quantity: 10, UnitPrice: 400, GSTRate: 18},
				{Description: "Delivery", Quantity: 1, UnitPrice: 500, GSTRate: 0},
			},
		})
		assert.NoError(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())

		assert.Equal(t, "INV-000001", resp.InvoiceNumber)
		assert.Equal(t, invoice.StatusDraft, resp.Status)
		assert.Equal(t, 4500.0, resp.Subtotal)
		assert.Equal(t, 720.0, resp.TaxTotal)
		assert.Equal(t, 5220.0, resp.GrandTotal)
		assert.Equal(t, "Sharma Traders", created.PartyName)
		assert.Equal(t, 4000.0, created.Items[0].LineTotal)
		assert.Equal(t, 720.0, created.Items[0].TaxAmount)
	})

	t.Run("unknown party fails the create", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		svc := invoice.NewService(db, &fakeInvoiceRepository{}, &fakePartyLookup{err: gorm.ErrRecordNotFound}, &fakeInvoiceCounter{})

		_, err = svc.Create(context.Background(), companyID, invoice.CreateInvoiceRequest{
			PartyID:     uuid.NewString(),
			InvoiceDate: "2026-08-20",
			Items: []invoice.LineItemRequest{
				{Description: "Cement bags", Quantity: 10, UnitPrice: 400, GSTRate: 18},
			},
		})
		assert.ErrorIs(t, err, partyerrors.ErrPartyNotFound)
	})
}

func TestInvoiceServiceUpdate(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("recomputes totals and keeps the number frozen", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		stored := &invoice.Invoice{
			ID:            uuid.New(),
			CompanyID:     uuid.MustParse(companyID),
			InvoiceNumber: "INV-000042",
			Status:        invoice.StatusDraft,
		}
		repo := &fakeInvoiceRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*invoice.Invoice, error) {
				return stored, nil
			},
		}
		svc := invoice.NewService(db, repo, &fakePartyLookup{}, &fakeInvoiceCounter{})

		resp, err := svc.Update(context.Background(), companyID, stored.ID.String(), invoice.UpdateInvoiceRequest{
			InvoiceDate: "2026-08-25",
			Status:      invoice.StatusPaid,
			Items: []invoice.LineItemRequest{
				{Description: "Cement bags", Quantity: 5, UnitPrice: 400, GSTRate: 18},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "INV-000042", resp.InvoiceNumber)
		assert.Equal(t, invoice.StatusPaid, resp.Status)
		assert.Equal(t, 2000.0, resp.Subtotal)
		assert.Equal(t, 360.0, resp.TaxTotal)
		assert.Equal(t, 2360.0, resp.GrandTotal)
	})

	t.Run("missing invoice maps to not found", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		repo := &fakeInvoiceRepository{
			findByIDAndCompanyFn: func(ctx context.Context, cid, id string) (*invoice.Invoice, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := invoice.NewService(db, repo, &fakePartyLookup{}, &fakeInvoiceCounter{})

		_, err = svc.Update(context.Background(), companyID, uuid.NewString(), invoice.UpdateInvoiceRequest{
			InvoiceDate: "2026-08-25",
			Status:      invoice.StatusPaid,
			Items: []invoice.LineItemRequest{
				{Description: "Cement bags", Quantity: 5, UnitPrice: 400, GSTRate: 18},
			},
		})
		assert.ErrorIs(t, err, invoiceerrors.ErrInvoiceNotFound)
	})
}
