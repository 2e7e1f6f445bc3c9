package irregular

type RecordIrregularPaymentRequest struct {
	PayDate     string  `json:"pay_date" binding:"required"`
	EmployeeID  *string `json:"employee_id" binding:"omitempty,uuid"`
	PersonName  string  `json:"person_name"`
	PersonType  string  `json:"person_type" binding:"required,oneof=EMPLOYEE LABOUR FREELANCER"`
	PaymentType string  `json:"payment_type" binding:"required,oneof=ADVANCE BONUS FESTIVAL_BONUS INCENTIVE OTHER"`
	Amount      float64 `json:"amount" binding:"required"`
	Remark      string  `json:"remark"`
	PaymentMode string  `json:"payment_mode"`
}

type IrregularPaymentResponse struct {
	ID             string  `json:"id"`
	CompanyID      string  `json:"company_id"`
	PayDate        string  `json:"pay_date"`
	EmployeeID     *string `json:"employee_id,omitempty"`
	PersonName     string  `json:"person_name"`
	PersonType     string  `json:"person_type"`
	PaymentType    string  `json:"payment_type"`
	Amount         float64 `json:"amount"`
	Remark         string  `json:"remark,omitempty"`
	PaymentMode    string  `json:"payment_mode,omitempty"`
	Applied        bool    `json:"applied"`
	AppliedAs      *string `json:"applied_as,omitempty"`
	AppliedInMonth *string `json:"applied_in_month,omitempty"`
	AppliedOn      *string `json:"applied_on,omitempty"`
}

// DeleteIrregularPaymentResponse carries the warning surfaced when an
// already-applied entry is force deleted.
type DeleteIrregularPaymentResponse struct {
	Deleted bool   `json:"deleted"`
	Warning string `json:"warning,omitempty"`
}
