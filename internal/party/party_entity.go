package party

import (
	"time"

	"github.com/google/uuid"
)

const (
	PartyTypeCustomer = "CUSTOMER"
	PartyTypeSupplier = "SUPPLIER"
)

// Party is a customer or supplier the business invoices or buys from.
type Party struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(120);not null"`
	PartyType string    `gorm:"type:varchar(20);not null"`
	Phone     string    `gorm:"type:varchar(20)"`
	Email     string    `gorm:"type:varchar(254)"`
	Address   string    `gorm:"type:text"`
	GSTIN     string    `gorm:"type:varchar(15)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
