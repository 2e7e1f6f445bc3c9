package company

type UpsertCompanyRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone" binding:"omitempty,numeric,len=10"`
	Email   string `json:"email" binding:"omitempty,email"`
	GSTIN   string `json:"gstin"`
	PAN     string `json:"pan" binding:"omitempty,len=10"`
}

type CompanyResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	GSTIN     string `json:"gstin,omitempty"`
	PAN       string `json:"pan,omitempty"`
}
