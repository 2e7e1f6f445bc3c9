package events

import "time"

const PayrollRunRecordedTopic = "books.payroll.run.recorded.v1"

type PayrollRunRecordedEvent struct {
	EventType        string    `json:"event_type"`
	RequestID        string    `json:"request_id,omitempty"`
	PayrollRunID     string    `json:"payroll_run_id"`
	EmployeeID       string    `json:"employee_id"`
	CompanyID        string    `json:"company_id"`
	Month            string    `json:"month"`
	NetAmount        float64   `json:"net_amount"`
	IrregularApplied int       `json:"irregular_applied"`
	OccurredAt       time.Time `json:"occurred_at"`
}
