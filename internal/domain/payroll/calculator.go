package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/oos-software/hr-backend-go/internal/domain/attendance"
)

// StandardWorkDays is the reference number of working days in a month. All
// pro-ration divides by it, whatever the calendar says; an employee with
// more present days than this earns more than their base.
const StandardWorkDays = 26

// AttendanceBonusThreshold is the number of present days above which the
// flat attendance bonus is granted.
const AttendanceBonusThreshold = 21

var (
	// positionBaseSalaries is the single canonical position table, VND/month.
	positionBaseSalaries = map[string]int64{
		"Director":  50_000_000,
		"Manager":   35_000_000,
		"Developer": 20_000_000,
		"DevOps":    22_000_000,
		"Tester":    15_000_000,
		"BA":        18_000_000,
		"HR":        15_000_000,
		"Sales":     12_000_000,
		"Intern":    5_000_000,
	}

	// defaultBaseSalary applies when the position is not in the table.
	defaultBaseSalary = decimal.NewFromInt(10_000_000)

	defaultKPIBase   = decimal.NewFromInt(2_000_000)
	attendanceBonus  = decimal.NewFromInt(600_000)
	defaultTransport = decimal.NewFromInt(500_000)
	defaultPhone     = decimal.NewFromInt(200_000)

	// Flat model: everything above the exemption is taxed at 10%. This is a
	// deliberate simplification, not the progressive PIT schedule.
	taxExemption = decimal.NewFromInt(11_000_000)
	taxRate      = decimal.New(1, -1) // 0.10

	standardWorkDays = decimal.NewFromInt(StandardWorkDays)
)

// BaseSalaryForPosition looks up the monthly base salary for a position.
// Unknown positions fall back to the default; the second return value lets
// callers log that instead of failing.
func BaseSalaryForPosition(position string) (decimal.Decimal, bool) {
	if base, ok := positionBaseSalaries[position]; ok {
		return decimal.NewFromInt(base), true
	}
	return defaultBaseSalary, false
}

// DaysPresent reduces a raw attendance collection to the present-day count
// for one employee-month. Duplicate records for the same (employee, date)
// are collapsed last-write-wins; upstream should not produce them, but the
// aggregator does not assume that.
func DaysPresent(records []attendance.Attendance, employeeID, month string) int {
	byDate := make(map[string]attendance.Status)
	for _, r := range records {
		if r.EmployeeID != employeeID {
			continue
		}
		if len(r.Date) < len(month) || r.Date[:len(month)] != month {
			continue
		}
		byDate[r.Date] = r.Status
	}

	days := 0
	for _, status := range byDate {
		if status == attendance.StatusPresent {
			days++
		}
	}
	return days
}

// ProRate scales a monthly base by daysPresent/26, rounded to whole VND.
// Used for the KPI and child-support bonus components only.
func ProRate(base decimal.Decimal, daysPresent int) decimal.Decimal {
	return base.Mul(decimal.NewFromInt(int64(daysPresent))).Div(standardWorkDays).Round(0)
}

// ProRateSalary scales base salary by daysPresent/26 without rounding;
// fractional VND is carried into the gross and only settles in the totals.
func ProRateSalary(base decimal.Decimal, daysPresent int) decimal.Decimal {
	return base.Mul(decimal.NewFromInt(int64(daysPresent))).Div(standardWorkDays)
}

// EstimateBonus synthesizes the bonus breakdown shown for a month nobody has
// saved yet. It is recomputed on every read and never stored.
func EstimateBonus(daysPresent int) BonusDetails {
	att := decimal.Zero
	if daysPresent > AttendanceBonusThreshold {
		att = attendanceBonus
	}

	return BonusDetails{
		KPIBase:            defaultKPIBase,
		KPIActual:          ProRate(defaultKPIBase, daysPresent),
		Attendance:         att,
		Transport:          defaultTransport,
		Phone:              defaultPhone,
		ChildSupportBase:   decimal.Zero,
		ChildSupportActual: decimal.Zero,
		PerDiem:            decimal.Zero,
		Other:              decimal.Zero,
		PaymentStatus:      PaymentStatusUnpaid,
	}
}

// FastPaymentNote marks bonus records fabricated by a payment confirmation
// that happened before the month's bonus was saved.
const FastPaymentNote = "Thanh toán nhanh"

// FallbackBonus is the record ConfirmPayment writes when no bonus was saved
// for the month. It intentionally reproduces the legacy behavior: KPI and
// attendance come out zero even though the displayed estimate pro-rated
// them, so the stored breakdown can total less than the amount paid.
func FallbackBonus(employeeID, month string) BonusDetails {
	note := FastPaymentNote
	return BonusDetails{
		EmployeeID:         employeeID,
		Month:              month,
		KPIBase:            defaultKPIBase,
		KPIActual:          decimal.Zero,
		Attendance:         decimal.Zero,
		Transport:          defaultTransport,
		Phone:              defaultPhone,
		ChildSupportBase:   decimal.Zero,
		ChildSupportActual: decimal.Zero,
		PerDiem:            decimal.Zero,
		Other:              decimal.Zero,
		PaymentStatus:      PaymentStatusPaid,
		Note:               &note,
	}
}

// BonusTotal is the one and only sum over the seven bonus components. Every
// view (payroll table, payment modal, payslip) must go through it.
func BonusTotal(b BonusDetails) decimal.Decimal {
	return b.KPIActual.
		Add(b.Attendance).
		Add(b.Transport).
		Add(b.Phone).
		Add(b.ChildSupportActual).
		Add(b.PerDiem).
		Add(b.Other)
}

// Computation is the full salary math for one employee-month.
type Computation struct {
	BaseSalary    decimal.Decimal
	DaysPresent   int
	ActualSalary  decimal.Decimal
	BonusTotal    decimal.Decimal
	GrossIncome   decimal.Decimal
	TaxableIncome decimal.Decimal
	Tax           decimal.Decimal
	NetSalary     decimal.Decimal
}

// Compute derives gross income, withholding tax and net salary. Pure; same
// inputs always give identical output, no rounding beyond what ProRate
// already applied to the bonus components.
func Compute(baseSalary decimal.Decimal, daysPresent int, bonusTotal decimal.Decimal) Computation {
	actualSalary := ProRateSalary(baseSalary, daysPresent)
	grossIncome := actualSalary.Add(bonusTotal)

	taxableIncome := grossIncome.Sub(taxExemption)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}
	tax := taxableIncome.Mul(taxRate)

	return Computation{
		BaseSalary:    baseSalary,
		DaysPresent:   daysPresent,
		ActualSalary:  actualSalary,
		BonusTotal:    bonusTotal,
		GrossIncome:   grossIncome,
		TaxableIncome: taxableIncome,
		Tax:           tax,
		NetSalary:     grossIncome.Sub(tax),
	}
}
