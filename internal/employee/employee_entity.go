package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	ModeFixed   = "FIXED"
	ModePercent = "PERCENT"

	PersonTypeEmployee   = "EMPLOYEE"
	PersonTypeLabour     = "LABOUR"
	PersonTypeFreelancer = "FREELANCER"
)

// SalaryInput is a component exactly as the user entered it: either an
// absolute annual amount or a percentage of Basic Salary.
type SalaryInput struct {
	Value float64 `json:"value"`
	Mode  string  `json:"mode"`
}

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number"`
	FullName       string    `gorm:"type:varchar(120);not null"`
	Designation    string    `gorm:"type:varchar(120)"`
	PersonType     string    `gorm:"type:varchar(20);not null;default:'EMPLOYEE'"`
	Phone          string    `gorm:"type:varchar(20)"`
	Email          string    `gorm:"type:varchar(254)"`
	PAN            string    `gorm:"type:varchar(10)"`
	GSTIN          string    `gorm:"type:varchar(15)"`

	// Basic Salary has no mode, it is always an absolute annual amount
	BasicAnnual      float64     `gorm:"not null;default:0"`
	HRA              SalaryInput `gorm:"embedded;embeddedPrefix:hra_"`
	Conveyance       SalaryInput `gorm:"embedded;embeddedPrefix:conveyance_"`
	EmployerPF       SalaryInput `gorm:"embedded;embeddedPrefix:employer_pf_"`
	Gratuity         SalaryInput `gorm:"embedded;embeddedPrefix:gratuity_"`
	SpecialAllowance SalaryInput `gorm:"embedded;embeddedPrefix:special_allowance_"`

	// Resolved annual amounts, overwritten on every save. The cached values,
	// not the raw inputs, are the source of truth for payroll generation.
	BasicAmount            int64 `gorm:"not null;default:0"`
	HRAAmount              int64 `gorm:"not null;default:0"`
	ConveyanceAmount       int64 `gorm:"not null;default:0"`
	EmployerPFAmount       int64 `gorm:"not null;default:0"`
	GratuityAmount         int64 `gorm:"not null;default:0"`
	SpecialAllowanceAmount int64 `gorm:"not null;default:0"`
	TotalCTC               int64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
