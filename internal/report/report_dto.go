package report

// PayrollMonthSummary aggregates every payroll run recorded for one month.
type PayrollMonthSummary struct {
	Month           string  `json:"month"`
	RunCount        int64   `json:"run_count"`
	TotalEarnings   float64 `json:"total_earnings"`
	TotalDeductions float64 `json:"total_deductions"`
	NetAmount       float64 `json:"net_amount"`
}

// ExpenseHeadSummary aggregates the expense ledger by head for a date range.
type ExpenseHeadSummary struct {
	Head        string  `json:"head"`
	Category    string  `json:"category"`
	EntryCount  int64   `json:"entry_count"`
	TotalAmount float64 `json:"total_amount"`
}
