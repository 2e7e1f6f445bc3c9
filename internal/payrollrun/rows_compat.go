package payrollrun

import "database/sql/driver"

// LegacyRow is the old storage shape where fixed and performance rows lived
// in a single flattened list, distinguished only by a boolean tag. Runs
// imported from old backups can still carry it.
type LegacyRow struct {
	Component string  `json:"component,omitempty"`
	Type      string  `json:"type,omitempty"`
	Label     string  `json:"label,omitempty"`
	Amount    float64 `json:"amount"`
	Remark    string  `json:"remark,omitempty"`
	Fixed     bool    `json:"fixed"`
}

type LegacyRowList []LegacyRow

func (l LegacyRowList) Value() (driver.Value, error) { return jsonbValue(l) }
func (l *LegacyRowList) Scan(src any) error          { return jsonbScan(l, src) }
func (l LegacyRowList) GormDataType() string         { return "jsonb" }

// SplitLegacyRows tears a flattened list apart into the split shape. Rows
// tagged fixed keep their component name; the rest become performance rows,
// falling back to PerformanceOther when the type tag is absent.
func SplitLegacyRows(rows LegacyRowList) (FixedRowList, PerformanceRowList) {
	if len(rows) == 0 {
		return nil, nil
	}

	fixed := make(FixedRowList, 0, len(rows))
	performance := make(PerformanceRowList, 0, len(rows))
	for _, row := range rows {
		if row.Fixed {
			fixed = append(fixed, FixedRow{
				Component: row.Component,
				Amount:    row.Amount,
				Remark:    row.Remark,
			})
			continue
		}

		rowType := row.Type
		label := row.Label
		if rowType == "" {
			rowType = PerformanceOther
			if label == "" {
				label = row.Component
			}
		}
		performance = append(performance, PerformanceRow{
			Type:   rowType,
			Label:  label,
			Amount: row.Amount,
			Remark: row.Remark,
		})
	}

	if len(fixed) == 0 {
		fixed = nil
	}
	if len(performance) == 0 {
		performance = nil
	}
	return fixed, performance
}

// normalizeRows migrates a run off the legacy flattened shape. It runs once
// when a run is loaded; after it, FixedRows and PerformanceRows are the only
// source of row data and LegacyRows is empty.
func (p *PayrollRun) normalizeRows() {
	if len(p.LegacyRows) == 0 {
		return
	}
	if len(p.FixedRows) > 0 || len(p.PerformanceRows) > 0 {
		// split shape already present, the legacy copy is stale
		p.LegacyRows = nil
		return
	}

	p.FixedRows, p.PerformanceRows = SplitLegacyRows(p.LegacyRows)
	p.LegacyRows = nil
}
