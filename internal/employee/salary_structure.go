package employee

import "math"

// Component names as they appear on payslips.
const (
	ComponentBasic            = "Basic Salary"
	ComponentHRA              = "HRA"
	ComponentConveyance       = "Conveyance"
	ComponentEmployerPF       = "Employer PF"
	ComponentGratuity         = "Gratuity"
	ComponentSpecialAllowance = "Special Allowance"
)

const FixedRowRemark = "Fixed Component"

// ResolveComponent converts a raw component input into an absolute annual
// amount. Negative or non-numeric values count as zero.
func ResolveComponent(in SalaryInput, basicAnnual float64) float64 {
	v := in.Value
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	if in.Mode == ModePercent {
		return basicAnnual * v / 100
	}
	return v
}

func roundAnnual(v float64) int64 {
	return int64(math.Round(v))
}

// RecomputeSalary resolves all six components against Basic Salary and
// overwrites the cached annual amounts and TotalCTC. Annual amounts round to
// whole currency units here; the monthly rows divide the rounded figure
// without re-rounding, so twelve months need not sum back to the annual.
func (e *Employee) RecomputeSalary() {
	basic := e.BasicAnnual
	if math.IsNaN(basic) || basic < 0 {
		basic = 0
		e.BasicAnnual = 0
	}

	e.BasicAmount = roundAnnual(basic)
	e.HRAAmount = roundAnnual(ResolveComponent(e.HRA, basic))
	e.ConveyanceAmount = roundAnnual(ResolveComponent(e.Conveyance, basic))
	e.EmployerPFAmount = roundAnnual(ResolveComponent(e.EmployerPF, basic))
	e.GratuityAmount = roundAnnual(ResolveComponent(e.Gratuity, basic))
	e.SpecialAllowanceAmount = roundAnnual(ResolveComponent(e.SpecialAllowance, basic))

	e.TotalCTC = e.BasicAmount +
		e.HRAAmount +
		e.ConveyanceAmount +
		e.EmployerPFAmount +
		e.GratuityAmount +
		e.SpecialAllowanceAmount
}

// MonthlyCTC is the derived monthly cost figure shown alongside TotalCTC.
func (e *Employee) MonthlyCTC() float64 {
	return float64(e.TotalCTC) / 12
}

// FixedComponentRow is one recurring monthly payslip line derived from the
// employee's cached annual amounts. Amounts are not editable per run.
type FixedComponentRow struct {
	Component string  `json:"component"`
	Amount    float64 `json:"amount"`
	Remark    string  `json:"remark"`
}

// MonthlyFixedRows derives the six fixed payslip lines for one month.
func (e *Employee) MonthlyFixedRows() []FixedComponentRow {
	annuals := []struct {
		name   string
		amount int64
	}{
		{ComponentBasic, e.BasicAmount},
		{ComponentHRA, e.HRAAmount},
		{ComponentConveyance, e.ConveyanceAmount},
		{ComponentEmployerPF, e.EmployerPFAmount},
		{ComponentGratuity, e.GratuityAmount},
		{ComponentSpecialAllowance, e.SpecialAllowanceAmount},
	}

	rows := make([]FixedComponentRow, 0, len(annuals))
	for _, a := range annuals {
		rows = append(rows, FixedComponentRow{
			Component: a.name,
			Amount:    float64(a.amount) / 12,
			Remark:    FixedRowRemark,
		})
	}
	return rows
}
