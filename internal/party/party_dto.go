package party

type CreatePartyRequest struct {
	Name      string `json:"name" binding:"required"`
	PartyType string `json:"party_type" binding:"required,oneof=CUSTOMER SUPPLIER"`
	Phone     string `json:"phone" binding:"omitempty,numeric,len=10"`
	Email     string `json:"email" binding:"omitempty,email"`
	Address   string `json:"address"`
	GSTIN     string `json:"gstin"`
}

type UpdatePartyRequest struct {
	Name      string `json:"name" binding:"required"`
	PartyType string `json:"party_type" binding:"required,oneof=CUSTOMER SUPPLIER"`
	Phone     string `json:"phone" binding:"omitempty,numeric,len=10"`
	Email     string `json:"email" binding:"omitempty,email"`
	Address   string `json:"address"`
	GSTIN     string `json:"gstin"`
}

type PartyResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	PartyType string `json:"party_type"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	GSTIN     string `json:"gstin,omitempty"`
}

// PartyOption is the slim shape served to invoice form dropdowns.
type PartyOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PartyType string `json:"party_type"`
}
