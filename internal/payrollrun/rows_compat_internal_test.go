package payrollrun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRows(t *testing.T) {
	t.Run("drains the legacy list into the split columns", func(t *testing.T) {
		run := PayrollRun{
			LegacyRows: LegacyRowList{
				{Component: "Basic Salary", Amount: 20000, Fixed: true},
				{Type: PerformanceIncentive, Amount: 1500, Fixed: false},
			},
		}

		run.normalizeRows()

		assert.Nil(t, run.LegacyRows)
		assert.Len(t, run.FixedRows, 1)
		assert.Len(t, run.PerformanceRows, 1)
	})

	t.Run("never overwrites an already split run", func(t *testing.T) {
		run := PayrollRun{
			FixedRows:  FixedRowList{{Component: "Basic Salary", Amount: 20000}},
			LegacyRows: LegacyRowList{{Component: "stale", Amount: 1, Fixed: true}},
		}

		run.normalizeRows()

		assert.Nil(t, run.LegacyRows)
		assert.Len(t, run.FixedRows, 1)
		assert.Equal(t, 20000.0, run.FixedRows[0].Amount)
	})

	t.Run("is a no-op without legacy rows", func(t *testing.T) {
		run := PayrollRun{
			FixedRows: FixedRowList{{Component: "Basic Salary", Amount: 20000}},
		}

		run.normalizeRows()

		assert.Len(t, run.FixedRows, 1)
		assert.Nil(t, run.PerformanceRows)
	})
}
