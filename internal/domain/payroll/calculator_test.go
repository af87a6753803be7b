package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oos-software/hr-backend-go/internal/domain/attendance"
)

func TestBaseSalaryForPosition(t *testing.T) {
	tests := []struct {
		position string
		want     int64
		known    bool
	}{
		{"Director", 50_000_000, true},
		{"Manager", 35_000_000, true},
		{"Developer", 20_000_000, true},
		{"DevOps", 22_000_000, true},
		{"Tester", 15_000_000, true},
		{"BA", 18_000_000, true},
		{"HR", 15_000_000, true},
		{"Sales", 12_000_000, true},
		{"Intern", 5_000_000, true},
		{"Astronaut", 10_000_000, false},
		{"", 10_000_000, false},
	}

	for _, tt := range tests {
		got, known := BaseSalaryForPosition(tt.position)
		assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "position %q: got %s", tt.position, got)
		assert.Equal(t, tt.known, known, "position %q", tt.position)
	}
}

func TestDaysPresent(t *testing.T) {
	records := []attendance.Attendance{
		{EmployeeID: "e1", Date: "2025-07-01", Status: attendance.StatusPresent},
		{EmployeeID: "e1", Date: "2025-07-02", Status: attendance.StatusAbsent},
		{EmployeeID: "e1", Date: "2025-07-03", Status: attendance.StatusPresent},
		// Other employee and other month must not count.
		{EmployeeID: "e2", Date: "2025-07-01", Status: attendance.StatusPresent},
		{EmployeeID: "e1", Date: "2025-06-30", Status: attendance.StatusPresent},
	}

	assert.Equal(t, 2, DaysPresent(records, "e1", "2025-07"))
	assert.Equal(t, 1, DaysPresent(records, "e2", "2025-07"))
	assert.Equal(t, 0, DaysPresent(records, "e3", "2025-07"))
	assert.Equal(t, 0, DaysPresent(nil, "e1", "2025-07"))
}

func TestDaysPresentDuplicateLastWriteWins(t *testing.T) {
	records := []attendance.Attendance{
		{EmployeeID: "e1", Date: "2025-07-01", Status: attendance.StatusPresent},
		{EmployeeID: "e1", Date: "2025-07-01", Status: attendance.StatusAbsent},
		{EmployeeID: "e1", Date: "2025-07-02", Status: attendance.StatusAbsent},
		{EmployeeID: "e1", Date: "2025-07-02", Status: attendance.StatusPresent},
	}

	// The later record for the same date replaces the earlier one.
	assert.Equal(t, 1, DaysPresent(records, "e1", "2025-07"))
}

func TestProRate(t *testing.T) {
	kpiBase := decimal.NewFromInt(2_000_000)

	// Exact multiples stay exact.
	assert.True(t, ProRate(kpiBase, 26).Equal(kpiBase))
	assert.True(t, ProRate(kpiBase, 13).Equal(decimal.NewFromInt(1_000_000)))
	assert.True(t, ProRate(kpiBase, 0).Equal(decimal.Zero))

	// 2,000,000 * 20 / 26 = 1,538,461.53... rounds to whole VND.
	assert.True(t, ProRate(kpiBase, 20).Equal(decimal.NewFromInt(1_538_462)))
}

func TestProRateSalaryUnrounded(t *testing.T) {
	base := decimal.NewFromInt(20_000_000)

	assert.True(t, ProRateSalary(base, 26).Equal(base))
	assert.True(t, ProRateSalary(base, 0).Equal(decimal.Zero))

	// Fractional VND is carried, not rounded away.
	got := ProRateSalary(decimal.NewFromInt(10_000_000), 7)
	assert.False(t, got.Equal(got.Round(0)))
}

func TestEstimateBonus(t *testing.T) {
	t.Run("attendance bonus above threshold", func(t *testing.T) {
		b := EstimateBonus(22)
		assert.True(t, b.Attendance.Equal(decimal.NewFromInt(600_000)))
	})

	t.Run("no attendance bonus at threshold", func(t *testing.T) {
		b := EstimateBonus(21)
		assert.True(t, b.Attendance.IsZero())
	})

	t.Run("fixed allowances independent of days", func(t *testing.T) {
		for _, days := range []int{0, 10, 26} {
			b := EstimateBonus(days)
			assert.True(t, b.Transport.Equal(decimal.NewFromInt(500_000)))
			assert.True(t, b.Phone.Equal(decimal.NewFromInt(200_000)))
			assert.True(t, b.PerDiem.IsZero())
			assert.True(t, b.Other.IsZero())
			assert.True(t, b.ChildSupportBase.IsZero())
			assert.Equal(t, PaymentStatusUnpaid, b.PaymentStatus)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first := EstimateBonus(17)
		second := EstimateBonus(17)
		assert.True(t, BonusTotal(first).Equal(BonusTotal(second)))
		assert.Equal(t, first, second)
	})
}

func TestBonusTotal(t *testing.T) {
	b := BonusDetails{
		KPIActual:          decimal.NewFromInt(1_538_461),
		Attendance:         decimal.NewFromInt(600_000),
		Transport:          decimal.NewFromInt(500_000),
		Phone:              decimal.NewFromInt(200_000),
		ChildSupportActual: decimal.Zero,
		PerDiem:            decimal.Zero,
		Other:              decimal.Zero,
	}

	assert.True(t, BonusTotal(b).Equal(decimal.NewFromInt(2_838_461)))

	// KPIBase and ChildSupportBase never enter the total.
	b.KPIBase = decimal.NewFromInt(999_999_999)
	b.ChildSupportBase = decimal.NewFromInt(999_999_999)
	assert.True(t, BonusTotal(b).Equal(decimal.NewFromInt(2_838_461)))
}

func TestComputeTaxFloor(t *testing.T) {
	// Gross at the exemption exactly: no tax.
	comp := Compute(decimal.NewFromInt(11_000_000), 26, decimal.Zero)
	assert.True(t, comp.Tax.IsZero())
	assert.True(t, comp.NetSalary.Equal(decimal.NewFromInt(11_000_000)))

	// Gross 21,000,000: taxable 10,000,000, tax 1,000,000.
	comp = Compute(decimal.NewFromInt(21_000_000), 26, decimal.Zero)
	assert.True(t, comp.Tax.Equal(decimal.NewFromInt(1_000_000)))
	assert.True(t, comp.NetSalary.Equal(decimal.NewFromInt(20_000_000)))
}

func TestComputeNetIdentity(t *testing.T) {
	comp := Compute(decimal.NewFromInt(35_000_000), 19, decimal.NewFromInt(3_300_000))
	assert.True(t, comp.NetSalary.Equal(comp.GrossIncome.Sub(comp.Tax)))
	assert.True(t, comp.GrossIncome.Equal(comp.ActualSalary.Add(comp.BonusTotal)))
}

func TestComputeZeroAttendanceScenario(t *testing.T) {
	base, known := BaseSalaryForPosition("Developer")
	require.True(t, known)

	bonus := EstimateBonus(0)
	assert.True(t, bonus.KPIActual.IsZero())
	assert.True(t, bonus.Attendance.IsZero())

	total := BonusTotal(bonus)
	assert.True(t, total.Equal(decimal.NewFromInt(700_000)))

	comp := Compute(base, 0, total)
	assert.True(t, comp.ActualSalary.IsZero())
	assert.True(t, comp.GrossIncome.Equal(decimal.NewFromInt(700_000)))
	assert.True(t, comp.Tax.IsZero())
	assert.True(t, comp.NetSalary.Equal(decimal.NewFromInt(700_000)))
}

func TestComputeFullAttendanceScenario(t *testing.T) {
	base, known := BaseSalaryForPosition("Developer")
	require.True(t, known)

	bonus := EstimateBonus(26)
	assert.True(t, bonus.KPIActual.Equal(decimal.NewFromInt(2_000_000)))
	assert.True(t, bonus.Attendance.Equal(decimal.NewFromInt(600_000)))

	total := BonusTotal(bonus)
	assert.True(t, total.Equal(decimal.NewFromInt(3_300_000)))

	comp := Compute(base, 26, total)
	assert.True(t, comp.ActualSalary.Equal(decimal.NewFromInt(20_000_000)))
	assert.True(t, comp.GrossIncome.Equal(decimal.NewFromInt(23_300_000)))
	assert.True(t, comp.TaxableIncome.Equal(decimal.NewFromInt(12_300_000)))
	assert.True(t, comp.Tax.Equal(decimal.NewFromInt(1_230_000)))
	assert.True(t, comp.NetSalary.Equal(decimal.NewFromInt(22_070_000)))
}

func TestComputeUnknownPositionScenario(t *testing.T) {
	base, known := BaseSalaryForPosition("Wizard")
	assert.False(t, known)
	assert.True(t, base.Equal(decimal.NewFromInt(10_000_000)))

	comp := Compute(base, 26, BonusTotal(EstimateBonus(26)))
	assert.True(t, comp.ActualSalary.Equal(decimal.NewFromInt(10_000_000)))
	assert.True(t, comp.NetSalary.Equal(comp.GrossIncome.Sub(comp.Tax)))
}

func TestComputeIdempotent(t *testing.T) {
	a := Compute(decimal.NewFromInt(22_000_000), 23, decimal.NewFromInt(3_069_231))
	b := Compute(decimal.NewFromInt(22_000_000), 23, decimal.NewFromInt(3_069_231))
	assert.Equal(t, a, b)
}

func TestFallbackBonus(t *testing.T) {
	b := FallbackBonus("e1", "2025-07")

	assert.Equal(t, "e1", b.EmployeeID)
	assert.Equal(t, "2025-07", b.Month)
	assert.Equal(t, PaymentStatusPaid, b.PaymentStatus)
	require.NotNil(t, b.Note)
	assert.Equal(t, FastPaymentNote, *b.Note)

	// The stored fast-payment record zeroes KPI and attendance even though
	// the estimate the caller saw may have pro-rated them.
	assert.True(t, b.KPIActual.IsZero())
	assert.True(t, b.Attendance.IsZero())
	assert.True(t, b.KPIBase.Equal(decimal.NewFromInt(2_000_000)))
	assert.True(t, BonusTotal(b).Equal(decimal.NewFromInt(700_000)))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "e1_2025-07", Key("e1", "2025-07"))
}
