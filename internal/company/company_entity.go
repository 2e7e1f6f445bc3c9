package company

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant's own business profile, one row per tenant. It also
// feeds the companyDetails block of backups.
type Company struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_company_profile"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Address   string    `gorm:"type:text"`
	Phone     string    `gorm:"type:varchar(20)"`
	Email     string    `gorm:"type:varchar(254)"`
	GSTIN     string    `gorm:"type:varchar(15)"`
	PAN       string    `gorm:"type:varchar(10)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
