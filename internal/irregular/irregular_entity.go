package irregular

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeAdvance       = "ADVANCE"
	TypeBonus         = "BONUS"
	TypeFestivalBonus = "FESTIVAL_BONUS"
	TypeIncentive     = "INCENTIVE"
	TypeOther         = "OTHER"
)

const (
	DirectionEarning   = "EARNING"
	DirectionDeduction = "DEDUCTION"
)

// IrregularPayment is an ad hoc advance or bonus recorded outside a payroll
// run. Once a run consumes it the applied fields freeze and the entry is
// never offered as pending again.
type IrregularPayment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_irregular_company_applied"`

	PayDate time.Time `gorm:"type:date;not null"`

	// EmployeeID is set for employees; labour and freelancers may be a free
	// text name only.
	EmployeeID *uuid.UUID `gorm:"type:uuid;index:idx_irregular_employee_applied"`
	PersonName string     `gorm:"type:varchar(120);not null"`
	PersonType string     `gorm:"type:varchar(20);not null"`

	PaymentType string  `gorm:"type:varchar(20);not null"`
	Amount      float64 `gorm:"not null"`
	Remark      string  `gorm:"type:text"`
	PaymentMode string  `gorm:"type:varchar(30)"`

	Applied        bool       `gorm:"not null;default:false;index:idx_irregular_company_applied;index:idx_irregular_employee_applied"`
	AppliedAs      *string    `gorm:"type:varchar(20)"`
	AppliedInMonth *string    `gorm:"type:varchar(7)"`
	AppliedOn      *time.Time `gorm:"type:date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
