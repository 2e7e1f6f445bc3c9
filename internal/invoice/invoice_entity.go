package invoice

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft = "DRAFT"
	StatusPaid  = "PAID"
)

// LineItem is one invoice row. LineTotal and TaxAmount are computed on the
// server from quantity, unit price and GST rate; client-sent values are
// ignored.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	GSTRate     float64 `json:"gst_rate"`
	LineTotal   float64 `json:"line_total"`
	TaxAmount   float64 `json:"tax_amount"`
}

type LineItemList []LineItem

func (l LineItemList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *LineItemList) Scan(src any) error {
	if src == nil {
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, l)
	case string:
		return json.Unmarshal([]byte(data), l)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

func (l LineItemList) GormDataType() string { return "jsonb" }

type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	InvoiceNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_invoice_number"`
	PartyID       uuid.UUID `gorm:"type:uuid;not null;index"`
	PartyName     string    `gorm:"type:varchar(120);not null"`
	InvoiceDate   time.Time `gorm:"not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'DRAFT'"`

	Items LineItemList `gorm:"type:jsonb"`

	Subtotal   float64 `gorm:"not null;default:0"`
	TaxTotal   float64 `gorm:"not null;default:0"`
	GrandTotal float64 `gorm:"not null;default:0"`

	Notes string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecomputeTotals resolves every line and overwrites the cached totals.
func (inv *Invoice) RecomputeTotals() {
	subtotal := 0.0
	taxTotal := 0.0
	for i := range inv.Items {
		item := &inv.Items[i]
		item.LineTotal = item.Quantity * item.UnitPrice
		item.TaxAmount = item.LineTotal * item.GSTRate / 100
		subtotal += item.LineTotal
		taxTotal += item.TaxAmount
	}
	inv.Subtotal = subtotal
	inv.TaxTotal = taxTotal
	inv.GrandTotal = subtotal + taxTotal
}
