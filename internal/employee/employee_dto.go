package employee

type SalaryInputRequest struct {
	Value float64 `json:"value"`
	Mode  string  `json:"mode" binding:"omitempty,oneof=FIXED PERCENT"`
}

type CreateEmployeeRequest struct {
	FullName         string             `json:"full_name" binding:"required"`
	Designation      string             `json:"designation"`
	PersonType       string             `json:"person_type" binding:"required,oneof=EMPLOYEE LABOUR FREELANCER"`
	Phone            string             `json:"phone" binding:"omitempty,numeric,len=10"`
	Email            string             `json:"email" binding:"omitempty,email"`
	PAN              string             `json:"pan" binding:"omitempty,len=10"`
	GSTIN            string             `json:"gstin"`
	BasicAnnual      float64            `json:"basic_annual"`
	HRA              SalaryInputRequest `json:"hra"`
	Conveyance       SalaryInputRequest `json:"conveyance"`
	EmployerPF       SalaryInputRequest `json:"employer_pf"`
	Gratuity         SalaryInputRequest `json:"gratuity"`
	SpecialAllowance SalaryInputRequest `json:"special_allowance"`
}

type UpdateEmployeeRequest struct {
	FullName         string             `json:"full_name" binding:"required"`
	Designation      string             `json:"designation"`
	PersonType       string             `json:"person_type" binding:"required,oneof=EMPLOYEE LABOUR FREELANCER"`
	Phone            string             `json:"phone" binding:"omitempty,numeric,len=10"`
	Email            string             `json:"email" binding:"omitempty,email"`
	PAN              string             `json:"pan" binding:"omitempty,len=10"`
	GSTIN            string             `json:"gstin"`
	BasicAnnual      float64            `json:"basic_annual"`
	HRA              SalaryInputRequest `json:"hra"`
	Conveyance       SalaryInputRequest `json:"conveyance"`
	EmployerPF       SalaryInputRequest `json:"employer_pf"`
	Gratuity         SalaryInputRequest `json:"gratuity"`
	SpecialAllowance SalaryInputRequest `json:"special_allowance"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	CompanyID      string `json:"company_id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Designation    string `json:"designation,omitempty"`
	PersonType     string `json:"person_type"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	PAN            string `json:"pan,omitempty"`
	GSTIN          string `json:"gstin,omitempty"`

	BasicAnnual      float64     `json:"basic_annual"`
	HRA              SalaryInput `json:"hra"`
	Conveyance       SalaryInput `json:"conveyance"`
	EmployerPF       SalaryInput `json:"employer_pf"`
	Gratuity         SalaryInput `json:"gratuity"`
	SpecialAllowance SalaryInput `json:"special_allowance"`

	BasicAmount            int64   `json:"basic_amount"`
	HRAAmount              int64   `json:"hra_amount"`
	ConveyanceAmount       int64   `json:"conveyance_amount"`
	EmployerPFAmount       int64   `json:"employer_pf_amount"`
	GratuityAmount         int64   `json:"gratuity_amount"`
	SpecialAllowanceAmount int64   `json:"special_allowance_amount"`
	TotalCTC               int64   `json:"total_ctc"`
	MonthlyCTC             float64 `json:"monthly_ctc"`
}

// EmployeeOption is the slim shape served to dropdowns.
type EmployeeOption struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
}
