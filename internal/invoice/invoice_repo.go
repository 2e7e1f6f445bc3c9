package invoice

import (
	"context"
	"database/sql"

	"go-bizledger/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=invoice_repo.go -destination=mock/invoice_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, inv *Invoice) error
	FindAllByCompany(ctx context.Context, companyID string, status string) ([]Invoice, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Invoice, error)
	Update(ctx context.Context, inv *Invoice) error
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

// Create inserts on the caller's transaction when one is attached so the
// invoice row commits together with the counter bump that produced its
// number.
func (r *repository) Create(ctx context.Context, inv *Invoice) error {
	if r.tx == nil {
		return r.db.WithContext(ctx).Create(inv).Error
	}

	query := `
INSERT INTO invoices (
	id, company_id, invoice_number, party_id, party_name,
	invoice_date, status, items,
	subtotal, tax_total, grand_total, notes,
	created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW()
)
`
	_, err := r.tx.ExecContext(
		ctx, query,
		inv.ID, inv.CompanyID, inv.InvoiceNumber, inv.PartyID, inv.PartyName,
		inv.InvoiceDate, inv.Status, inv.Items,
		inv.Subtotal, inv.TaxTotal, inv.GrandTotal, inv.Notes,
	)
	return err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, status string) ([]Invoice, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var invoices []Invoice
	err := q.Order("invoice_number DESC").Find(&invoices).Error
	return invoices, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Invoice, error) {
	var inv Invoice
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&inv, "id = ?", id).Error
	return &inv, err
}

func (r *repository) Update(ctx context.Context, inv *Invoice) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Invoice{}, "id = ?", id).Error
}
