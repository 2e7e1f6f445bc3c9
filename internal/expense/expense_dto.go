package expense

type CreateExpenseRequest struct {
	ExpenseDate string  `json:"expense_date" binding:"required,datetime=2006-01-02"`
	Head        string  `json:"head" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=FIXED VARIABLE"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentMode string  `json:"payment_mode"`
	Description string  `json:"description"`
	ReceiptRef  string  `json:"receipt_ref"`
}

type UpdateExpenseRequest struct {
	ExpenseDate string  `json:"expense_date" binding:"required,datetime=2006-01-02"`
	Head        string  `json:"head" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=FIXED VARIABLE"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentMode string  `json:"payment_mode"`
	Description string  `json:"description"`
	ReceiptRef  string  `json:"receipt_ref"`
}

type ExpenseResponse struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	ExpenseDate string  `json:"expense_date"`
	Head        string  `json:"head"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"payment_mode,omitempty"`
	Description string  `json:"description,omitempty"`
	ReceiptRef  string  `json:"receipt_ref,omitempty"`
}
