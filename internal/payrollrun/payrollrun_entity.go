package payrollrun

import (
	"time"

	"github.com/google/uuid"
)

// PayrollRun is one committed salary payment. EmployeeName and EmployeePost
// are snapshots; deleting the employee later leaves the run intact with its
// former employee id unresolvable.
type PayrollRun struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeName string    `gorm:"type:varchar(120);not null"`
	EmployeePost string    `gorm:"type:varchar(120)"`

	PayDate     time.Time `gorm:"not null"`
	Month       string    `gorm:"type:varchar(20);not null;index"`
	PaymentMode string    `gorm:"type:varchar(30)"`

	FixedRows        FixedRowList            `gorm:"type:jsonb"`
	PerformanceRows  PerformanceRowList      `gorm:"type:jsonb"`
	Deductions       DeductionRowList        `gorm:"type:jsonb"`
	IrregularApplied AppliedIrregularRowList `gorm:"type:jsonb"`

	// LegacyRows holds the pre-split flattened row list for runs restored
	// from old backups. It is drained into the split columns on load.
	LegacyRows LegacyRowList `gorm:"type:jsonb"`

	TotalEarnings   float64 `gorm:"not null;default:0"`
	TotalDeductions float64 `gorm:"not null;default:0"`
	NetAmount       float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecomputeTotals overwrites the cached totals from the current rows.
func (p *PayrollRun) RecomputeTotals() error {
	earnings, deductions, net, err := ComputeTotals(
		p.FixedRows, p.PerformanceRows, p.Deductions, p.IrregularApplied,
	)
	if err != nil {
		return err
	}
	p.TotalEarnings = earnings
	p.TotalDeductions = deductions
	p.NetAmount = net
	return nil
}
