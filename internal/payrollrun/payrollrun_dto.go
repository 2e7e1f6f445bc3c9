package payrollrun

type PerformanceRowRequest struct {
	Type   string  `json:"type" binding:"required,oneof=ADVANCE INCENTIVE BONUS OTHER"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Remark string  `json:"remark"`
}

type DeductionRowRequest struct {
	Reason string  `json:"reason" binding:"required,oneof=UNPAID_LEAVE ADVANCE_RECOVERY FINE EMPLOYEE_PF TDS OTHER"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Remark string  `json:"remark"`
}

// IrregularDecisionRequest is the caller's verdict on one pending irregular
// payment: fold it into this run as an earning or a deduction, or leave it
// pending.
type IrregularDecisionRequest struct {
	IrregularPaymentID string `json:"irregular_payment_id" binding:"required,uuid"`
	Direction          string `json:"direction" binding:"required,oneof=EARNING DEDUCTION IGNORE"`
}

type CreatePayrollRunRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	PayDate     string `json:"pay_date" binding:"required,datetime=2006-01-02"`
	Month       string `json:"month" binding:"required"`
	PaymentMode string `json:"payment_mode" binding:"required"`

	PerformanceRows    []PerformanceRowRequest    `json:"performance_rows" binding:"omitempty,dive"`
	Deductions         []DeductionRowRequest      `json:"deductions" binding:"omitempty,dive"`
	IrregularDecisions []IrregularDecisionRequest `json:"irregular_decisions" binding:"omitempty,dive"`
}

// UpdatePayrollRunRequest re-saves a run's composition. The set of applied
// irregular payments is frozen at create time and cannot be changed here.
type UpdatePayrollRunRequest struct {
	PayDate     string `json:"pay_date" binding:"required,datetime=2006-01-02"`
	Month       string `json:"month" binding:"required"`
	PaymentMode string `json:"payment_mode" binding:"required"`

	PerformanceRows []PerformanceRowRequest `json:"performance_rows" binding:"omitempty,dive"`
	Deductions      []DeductionRowRequest   `json:"deductions" binding:"omitempty,dive"`
}

type PayrollRunResponse struct {
	ID           string `json:"id"`
	CompanyID    string `json:"company_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	EmployeePost string `json:"employee_post,omitempty"`
	PayDate      string `json:"pay_date"`
	Month        string `json:"month"`
	PaymentMode  string `json:"payment_mode,omitempty"`

	FixedRows        []FixedRow            `json:"fixed_rows"`
	PerformanceRows  []PerformanceRow      `json:"performance_rows"`
	Deductions       []DeductionRow        `json:"deductions"`
	IrregularApplied []AppliedIrregularRow `json:"irregular_applied"`

	TotalEarnings   float64 `json:"total_earnings"`
	TotalDeductions float64 `json:"total_deductions"`
	NetAmount       float64 `json:"net_amount"`
}

// DeletePayrollRunResponse lists the irregular payments that stay marked
// applied even though the run that consumed them is gone.
type DeletePayrollRunResponse struct {
	Deleted                     bool     `json:"deleted"`
	OrphanedIrregularPaymentIDs []string `json:"orphaned_irregular_payment_ids,omitempty"`
}
