package backup

import (
	"encoding/json"
	"time"
)

const (
	archiveAppID  = "bizledger"
	formatVersion = 1
)

// Collection names as they appear in an archive.
const (
	CollectionEmployees         = "employees"
	CollectionIrregularPayments = "irregular_payments"
	CollectionPayrollRuns       = "payroll_runs"
	CollectionExpenses          = "expenses"
	CollectionParties           = "parties"
	CollectionInvoices          = "invoices"
)

// Document is one record in an archive: its original id plus the record
// body. Restore writes it back under the same id so cross-references (a
// payroll run's employee id, an invoice's party id) survive the round trip.
type Document struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

type Meta struct {
	AppID         string    `json:"app_id"`
	CompanyID     string    `json:"company_id"`
	CreatedAt     time.Time `json:"created_at"`
	FormatVersion int       `json:"format_version"`
}

type Archive struct {
	Meta           Meta                  `json:"meta"`
	CompanyDetails *Document             `json:"company_details"`
	Collections    map[string][]Document `json:"collections"`
}

// RestoreSummary reports how many documents each collection got back.
type RestoreSummary struct {
	Restored map[string]int `json:"restored"`
}
