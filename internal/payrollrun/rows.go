package payrollrun

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Directions an irregular payment can be applied in.
const (
	DirectionEarning   = "EARNING"
	DirectionDeduction = "DEDUCTION"
	DirectionIgnore    = "IGNORE"
)

// Performance row types. TypeOther carries a freeform label.
const (
	PerformanceAdvance   = "ADVANCE"
	PerformanceIncentive = "INCENTIVE"
	PerformanceBonus     = "BONUS"
	PerformanceOther     = "OTHER"
)

// Deduction reasons. ReasonOther carries a freeform label.
const (
	ReasonUnpaidLeave     = "UNPAID_LEAVE"
	ReasonAdvanceRecovery = "ADVANCE_RECOVERY"
	ReasonFine            = "FINE"
	ReasonEmployeePF      = "EMPLOYEE_PF"
	ReasonTDS             = "TDS"
	ReasonOther           = "OTHER"
)

// FixedRow is a snapshot of one monthly fixed component at the time the run
// was entered. Amounts are frozen; a later employee edit does not touch them.
type FixedRow struct {
	Component string  `json:"component"`
	Amount    float64 `json:"amount"`
	Remark    string  `json:"remark,omitempty"`
}

// PerformanceRow is an ad hoc earning entered for one run.
type PerformanceRow struct {
	Type   string  `json:"type"`
	Label  string  `json:"label,omitempty"`
	Amount float64 `json:"amount"`
	Remark string  `json:"remark,omitempty"`
}

type DeductionRow struct {
	Reason string  `json:"reason"`
	Label  string  `json:"label,omitempty"`
	Amount float64 `json:"amount"`
	Remark string  `json:"remark,omitempty"`
}

// AppliedIrregularRow records one irregular payment this run consumed and
// the direction it was applied in.
type AppliedIrregularRow struct {
	IrregularPaymentID string  `json:"irregular_payment_id"`
	PaymentType        string  `json:"payment_type"`
	Direction          string  `json:"direction"`
	Amount             float64 `json:"amount"`
}

type (
	FixedRowList            []FixedRow
	PerformanceRowList      []PerformanceRow
	DeductionRowList        []DeductionRow
	AppliedIrregularRowList []AppliedIrregularRow
)

func jsonbValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func jsonbScan(dst any, src any) error {
	if src == nil {
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

func (l FixedRowList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *FixedRowList) Scan(src any) error          { return jsonbScan(l, src) }
func (l FixedRowList) GormDataType() string         { return "jsonb" }

func (l PerformanceRowList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *PerformanceRowList) Scan(src any) error          { return jsonbScan(l, src) }
func (l PerformanceRowList) GormDataType() string         { return "jsonb" }

func (l DeductionRowList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *DeductionRowList) Scan(src any) error          { return jsonbScan(l, src) }
func (l DeductionRowList) GormDataType() string         { return "jsonb" }

func (l AppliedIrregularRowList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *AppliedIrregularRowList) Scan(src any) error          { return jsonbScan(l, src) }
func (l AppliedIrregularRowList) GormDataType() string         { return "jsonb" }

var errUnknownDirection = errors.New("unknown irregular application direction")

// ComputeTotals sums a run's composition. Earnings are fixed rows plus
// performance rows plus irregular payments applied as earning; deductions
// are the deduction rows plus irregular payments applied as deduction.
func ComputeTotals(
	fixed FixedRowList,
	performance PerformanceRowList,
	deductions DeductionRowList,
	applied AppliedIrregularRowList,
) (earnings, totalDeductions, net float64, err error) {
	for _, row := range fixed {
		earnings += row.Amount
	}
	for _, row := range performance {
		earnings += row.Amount
	}
	for _, row := range deductions {
		totalDeductions += row.Amount
	}
	for _, row := range applied {
		switch row.Direction {
		case DirectionEarning:
			earnings += row.Amount
		case DirectionDeduction:
			totalDeductions += row.Amount
		default:
			return 0, 0, 0, errUnknownDirection
		}
	}
	return earnings, totalDeductions, earnings - totalDeductions, nil
}
