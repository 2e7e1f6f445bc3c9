package expense

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryFixed    = "FIXED"
	CategoryVariable = "VARIABLE"
)

// Expense is one regular (non-payroll) ledger row. No derived state.
type Expense struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpenseDate time.Time `gorm:"not null;index"`
	Head        string    `gorm:"type:varchar(120);not null"`
	Category    string    `gorm:"type:varchar(20);not null"`
	Amount      float64   `gorm:"not null"`
	PaymentMode string    `gorm:"type:varchar(30)"`
	Description string    `gorm:"type:text"`
	ReceiptRef  string    `gorm:"type:varchar(120)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
