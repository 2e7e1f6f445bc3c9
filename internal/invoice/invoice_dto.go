package invoice

type LineItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
	GSTRate     float64 `json:"gst_rate" binding:"gte=0,lte=28"`
}

type CreateInvoiceRequest struct {
	PartyID     string            `json:"party_id" binding:"required,uuid"`
	InvoiceDate string            `json:"invoice_date" binding:"required,datetime=2006-01-02"`
	Items       []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes       string            `json:"notes"`
}

type UpdateInvoiceRequest struct {
	InvoiceDate string            `json:"invoice_date" binding:"required,datetime=2006-01-02"`
	Status      string            `json:"status" binding:"required,oneof=DRAFT PAID"`
	Items       []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes       string            `json:"notes"`
}

type InvoiceResponse struct {
	ID            string     `json:"id"`
	CompanyID     string     `json:"company_id"`
	InvoiceNumber string     `json:"invoice_number"`
	PartyID       string     `json:"party_id"`
	PartyName     string     `json:"party_name"`
	InvoiceDate   string     `json:"invoice_date"`
	Status        string     `json:"status"`
	Items         []LineItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	TaxTotal      float64    `json:"tax_total"`
	GrandTotal    float64    `json:"grand_total"`
	Notes         string     `json:"notes,omitempty"`
}
