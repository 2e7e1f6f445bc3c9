package employee_test

import (
	"math"
	"testing"

	"go-bizledger/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestResolveComponent(t *testing.T) {
	t.Run("fixed mode ignores basic", func(t *testing.T) {
		in := employee.SalaryInput{Value: 19200, Mode: employee.ModeFixed}
		assert.Equal(t, 19200.0, employee.ResolveComponent(in, 240000))
		assert.Equal(t, 19200.0, employee.ResolveComponent(in, 0))
		assert.Equal(t, 19200.0, employee.ResolveComponent(in, 999999))
	})

	t.Run("percent mode scales with basic", func(t *testing.T) {
		in := employee.SalaryInput{Value: 40, Mode: employee.ModePercent}
		assert.Equal(t, 96000.0, employee.ResolveComponent(in, 240000))
		assert.Equal(t, 0.0, employee.ResolveComponent(in, 0))

		zero := employee.SalaryInput{Value: 0, Mode: employee.ModePercent}
		assert.Equal(t, 0.0, employee.ResolveComponent(zero, 240000))
	})

	t.Run("negative and NaN coerce to zero", func(t *testing.T) {
		neg := employee.SalaryInput{Value: -500, Mode: employee.ModeFixed}
		assert.Equal(t, 0.0, employee.ResolveComponent(neg, 240000))

		nan := employee.SalaryInput{Value: math.NaN(), Mode: employee.ModePercent}
		assert.Equal(t, 0.0, employee.ResolveComponent(nan, 240000))
	})
}

func TestRecomputeSalary(t *testing.T) {
	t.Run("worked example", func(t *testing.T) {
		empl := employee.Employee{
			BasicAnnual:      240000,
			HRA:              employee.SalaryInput{Value: 40, Mode: employee.ModePercent},
			Conveyance:       employee.SalaryInput{Value: 19200, Mode: employee.ModeFixed},
			EmployerPF:       employee.SalaryInput{Value: 12, Mode: employee.ModePercent},
			Gratuity:         employee.SalaryInput{Value: 4.81, Mode: employee.ModePercent},
			SpecialAllowance: employee.SalaryInput{Value: 0, Mode: employee.ModeFixed},
		}
		empl.RecomputeSalary()

		assert.Equal(t, int64(240000), empl.BasicAmount)
		assert.Equal(t, int64(96000), empl.HRAAmount)
		assert.Equal(t, int64(19200), empl.ConveyanceAmount)
		assert.Equal(t, int64(28800), empl.EmployerPFAmount)
		assert.Equal(t, int64(11544), empl.GratuityAmount)
		assert.Equal(t, int64(0), empl.SpecialAllowanceAmount)
		assert.Equal(t, int64(395544), empl.TotalCTC)
	})

	t.Run("total is always the sum of cached amounts", func(t *testing.T) {
		empl := employee.Employee{
			BasicAnnual:      300001,
			HRA:              employee.SalaryInput{Value: 33.33, Mode: employee.ModePercent},
			Conveyance:       employee.SalaryInput{Value: 1000.49, Mode: employee.ModeFixed},
			EmployerPF:       employee.SalaryInput{Value: 12, Mode: employee.ModePercent},
			Gratuity:         employee.SalaryInput{Value: 4.81, Mode: employee.ModePercent},
			SpecialAllowance: employee.SalaryInput{Value: 7500.5, Mode: employee.ModeFixed},
		}
		empl.RecomputeSalary()

		sum := empl.BasicAmount + empl.HRAAmount + empl.ConveyanceAmount +
			empl.EmployerPFAmount + empl.GratuityAmount + empl.SpecialAllowanceAmount
		assert.Equal(t, sum, empl.TotalCTC)
	})

	t.Run("negative basic coerces to zero", func(t *testing.T) {
		empl := employee.Employee{
			BasicAnnual: -1000,
			HRA:         employee.SalaryInput{Value: 40, Mode: employee.ModePercent},
		}
		empl.RecomputeSalary()

		assert.Equal(t, int64(0), empl.BasicAmount)
		assert.Equal(t, int64(0), empl.HRAAmount)
		assert.Equal(t, int64(0), empl.TotalCTC)
	})
}

func TestMonthlyFixedRows(t *testing.T) {
	empl := employee.Employee{
		BasicAnnual:      240000,
		HRA:              employee.SalaryInput{Value: 40, Mode: employee.ModePercent},
		Conveyance:       employee.SalaryInput{Value: 19200, Mode: employee.ModeFixed},
		EmployerPF:       employee.SalaryInput{Value: 12, Mode: employee.ModePercent},
		Gratuity:         employee.SalaryInput{Value: 4.81, Mode: employee.ModePercent},
		SpecialAllowance: employee.SalaryInput{Value: 0, Mode: employee.ModeFixed},
	}
	empl.RecomputeSalary()

	rows := empl.MonthlyFixedRows()
	assert.Len(t, rows, 6)

	t.Run("each amount is exactly annual over twelve", func(t *testing.T) {
		assert.Equal(t, 240000.0/12, rows[0].Amount)
		assert.Equal(t, 96000.0/12, rows[1].Amount)
		assert.Equal(t, 19200.0/12, rows[2].Amount)
		assert.Equal(t, 28800.0/12, rows[3].Amount)
		assert.Equal(t, 11544.0/12, rows[4].Amount)
		assert.Equal(t, 0.0, rows[5].Amount)

		for _, row := range rows {
			assert.Equal(t, employee.FixedRowRemark, row.Remark)
		}
	})

	t.Run("monthly quotient is not re-rounded even when annual rounding drifts", func(t *testing.T) {
		drift := employee.Employee{
			BasicAnnual: 100000.4, // rounds to 100000 annually
		}
		drift.RecomputeSalary()
		assert.Equal(t, int64(100000), drift.BasicAmount)

		monthly := drift.MonthlyFixedRows()[0].Amount
		assert.Equal(t, 100000.0/12, monthly)
		// twelve months of the quotient rebuild the rounded annual, not the raw input
		assert.NotEqual(t, drift.BasicAnnual, monthly*12)
	})
}
