package payroll

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oos-software/hr-backend-go/internal/domain/attendance"
	"github.com/oos-software/hr-backend-go/internal/domain/company"
	"github.com/oos-software/hr-backend-go/internal/domain/employee"
	"github.com/oos-software/hr-backend-go/internal/domain/invoice"
	"github.com/oos-software/hr-backend-go/internal/domain/payroll"
	"github.com/oos-software/hr-backend-go/internal/pkg/database"
)

// ========== in-memory stubs ==========

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	s.employees[e.ID] = e
	return e, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if e, ok := s.employees[id]; ok {
		return e, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(ctx context.Context, status *employee.Status) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range s.employees {
		if status == nil || e.Status == *status {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubEmployeeRepo) GetHired(ctx context.Context) ([]employee.Employee, error) {
	hired := employee.StatusHired
	return s.List(ctx, &hired)
}

func (s *stubEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	s.employees[e.ID] = e
	return e, nil
}

func (s *stubEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	e, ok := s.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.Status = status
	s.employees[id] = e
	return nil
}

func (s *stubEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(s.employees, id)
	return nil
}

type stubAttendanceRepo struct {
	records []attendance.Attendance
}

func (s *stubAttendanceRepo) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	s.records = append(s.records, a)
	return a, nil
}

func (s *stubAttendanceRepo) ListByMonth(ctx context.Context, month string) ([]attendance.Attendance, error) {
	return s.records, nil
}

func (s *stubAttendanceRepo) ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range s.records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }

type stubBonusRepo struct {
	records map[string]payroll.BonusDetails
}

func (s *stubBonusRepo) GetByEmployeeMonth(ctx context.Context, employeeID, month string) (payroll.BonusDetails, error) {
	if b, ok := s.records[payroll.Key(employeeID, month)]; ok {
		return b, nil
	}
	return payroll.BonusDetails{}, payroll.ErrBonusRecordNotFound
}

func (s *stubBonusRepo) GetByEmployeeMonthForUpdate(ctx context.Context, employeeID, month string) (payroll.BonusDetails, error) {
	return s.GetByEmployeeMonth(ctx, employeeID, month)
}

func (s *stubBonusRepo) ListByMonth(ctx context.Context, month string) ([]payroll.BonusDetails, error) {
	var out []payroll.BonusDetails
	for _, b := range s.records {
		if b.Month == month {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBonusRepo) Create(ctx context.Context, b payroll.BonusDetails) (payroll.BonusDetails, error) {
	key := payroll.Key(b.EmployeeID, b.Month)
	if _, ok := s.records[key]; ok {
		return payroll.BonusDetails{}, payroll.ErrBonusRecordExists
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	s.records[key] = b
	return b, nil
}

func (s *stubBonusRepo) Upsert(ctx context.Context, b payroll.BonusDetails) (payroll.BonusDetails, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	s.records[payroll.Key(b.EmployeeID, b.Month)] = b
	return b, nil
}

// racingBonusRepo reproduces the interleaving where two payment
// confirmations both read before either writes. With no row to lock,
// the select cannot serialize them; only the insert conflict can.
type racingBonusRepo struct {
	*stubBonusRepo
}

func (r *racingBonusRepo) GetByEmployeeMonthForUpdate(ctx context.Context, employeeID, month string) (payroll.BonusDetails, error) {
	return payroll.BonusDetails{}, payroll.ErrBonusRecordNotFound
}

// txCheckingBonusRepo fails the test when the status read or the write
// runs outside a transaction.
type txCheckingBonusRepo struct {
	*stubBonusRepo
	t *testing.T
}

func (r *txCheckingBonusRepo) GetByEmployeeMonthForUpdate(ctx context.Context, employeeID, month string) (payroll.BonusDetails, error) {
	assert.NotNil(r.t, ctx.Value("tx"), "status read must run inside the transaction")
	return r.stubBonusRepo.GetByEmployeeMonthForUpdate(ctx, employeeID, month)
}

func (r *txCheckingBonusRepo) Upsert(ctx context.Context, b payroll.BonusDetails) (payroll.BonusDetails, error) {
	assert.NotNil(r.t, ctx.Value("tx"), "write must share the status read's transaction")
	return r.stubBonusRepo.Upsert(ctx, b)
}

type stubInvoiceRepo struct {
	invoices []invoice.Invoice
}

func (s *stubInvoiceRepo) Create(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	inv.ID = uuid.NewString()
	s.invoices = append(s.invoices, inv)
	return inv, nil
}

func (s *stubInvoiceRepo) GetByID(ctx context.Context, id string) (invoice.Invoice, error) {
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return invoice.Invoice{}, invoice.ErrInvoiceNotFound
}

func (s *stubInvoiceRepo) List(ctx context.Context, filter invoice.ListFilter) ([]invoice.Invoice, error) {
	return s.invoices, nil
}

func (s *stubInvoiceRepo) Update(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	return inv, nil
}

func (s *stubInvoiceRepo) UpdateStatus(ctx context.Context, id string, status invoice.Status) error {
	return nil
}

func (s *stubInvoiceRepo) Delete(ctx context.Context, id string) error { return nil }

type stubSettingsRepo struct {
	settings company.Settings
}

func (s *stubSettingsRepo) Get(ctx context.Context) (company.Settings, error) {
	if s.settings.ID == "" {
		return company.Settings{}, company.ErrSettingsNotFound
	}
	return s.settings, nil
}

func (s *stubSettingsRepo) Upsert(ctx context.Context, settings company.Settings) (company.Settings, error) {
	s.settings = settings
	return settings, nil
}

// ========== fixtures ==========

type fixture struct {
	svc        payroll.PayrollService
	mock       pgxmock.PgxPoolIface
	employees  *stubEmployeeRepo
	attendance *stubAttendanceRepo
	bonuses    *stubBonusRepo
	invoices   *stubInvoiceRepo
}

func newFixture(t *testing.T) *fixture {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	employees := &stubEmployeeRepo{employees: map[string]employee.Employee{}}
	attendanceRepo := &stubAttendanceRepo{}
	bonuses := &stubBonusRepo{records: map[string]payroll.BonusDetails{}}
	invoices := &stubInvoiceRepo{}
	settings := &stubSettingsRepo{settings: company.Settings{
		ID:      uuid.NewString(),
		Name:    "OOS Software",
		TaxID:   "0312345678",
		Address: "12 Nguyen Hue, District 1, HCMC",
	}}

	svc := NewPayrollService(database.NewFromPool(mock), employees, attendanceRepo, bonuses, invoices, settings)
	return &fixture{
		svc:        svc,
		mock:       mock,
		employees:  employees,
		attendance: attendanceRepo,
		bonuses:    bonuses,
		invoices:   invoices,
	}
}

func (f *fixture) addHired(id, name, position string) {
	f.employees.employees[id] = employee.Employee{
		ID:       id,
		Name:     name,
		Position: position,
		Status:   employee.StatusHired,
	}
}

func (f *fixture) addPresentDays(employeeID, month string, days int) {
	for i := 1; i <= days; i++ {
		f.attendance.records = append(f.attendance.records, attendance.Attendance{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			Date:       fmt.Sprintf("%s-%02d", month, i),
			Status:     attendance.StatusPresent,
		})
	}
}

// ========== tests ==========

func TestGetPayrollEstimates(t *testing.T) {
	f := newFixture(t)
	f.addHired("dev", "Tran Van A", "Developer")
	f.addPresentDays("dev", "2025-07", 26)

	summary, err := f.svc.GetPayroll(context.Background(), "2025-07")
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)

	item := summary.Items[0]
	assert.Equal(t, 26, item.DaysPresent)
	assert.False(t, item.BonusSaved)
	assert.Equal(t, string(payroll.PaymentStatusUnpaid), item.PaymentStatus)
	assert.True(t, item.BaseSalary.Equal(decimal.NewFromInt(20_000_000)))
	assert.True(t, item.ActualSalary.Equal(decimal.NewFromInt(20_000_000)))
	assert.True(t, item.BonusTotal.Equal(decimal.NewFromInt(3_300_000)))
	assert.True(t, item.Tax.Equal(decimal.NewFromInt(1_230_000)))
	assert.True(t, item.NetSalary.Equal(decimal.NewFromInt(22_070_000)))

	assert.True(t, summary.TotalNetSalary.Equal(decimal.NewFromInt(22_070_000)))
	assert.True(t, summary.TotalTax.Equal(decimal.NewFromInt(1_230_000)))
}

func TestGetPayrollExcludesCandidates(t *testing.T) {
	f := newFixture(t)
	f.addHired("dev", "Tran Van A", "Developer")
	f.employees.employees["applicant"] = employee.Employee{
		ID: "applicant", Name: "Le Thi B", Position: "Tester", Status: employee.StatusWaiting,
	}

	summary, err := f.svc.GetPayroll(context.Background(), "2025-07")
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "dev", summary.Items[0].EmployeeID)
}

func TestGetPayrollInvalidMonth(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetPayroll(context.Background(), "2025-13")
	assert.ErrorIs(t, err, payroll.ErrInvalidMonthKey)

	_, err = f.svc.GetPayroll(context.Background(), "July 2025")
	assert.ErrorIs(t, err, payroll.ErrInvalidMonthKey)
}

func TestGetBonusEstimateVsSaved(t *testing.T) {
	f := newFixture(t)
	f.addHired("dev", "Tran Van A", "Developer")
	f.addPresentDays("dev", "2025-07", 26)

	// No saved record: estimate, flagged as such.
	est, err := f.svc.GetBonus(context.Background(), "dev", "2025-07")
	require.NoError(t, err)
	assert.False(t, est.Saved)
	assert.True(t, est.KPIActual.Equal(decimal.NewFromInt(2_000_000)))
	assert.True(t, est.Total.Equal(decimal.NewFromInt(3_300_000)))

	// Estimates are deterministic.
	again, err := f.svc.GetBonus(context.Background(), "dev", "2025-07")
	require.NoError(t, err)
	assert.Equal(t, est, again)

	// A saved record is returned verbatim even if attendance changes later.
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	_, err = f.svc.SaveBonus(context.Background(), "dev", "2025-07", payroll.SaveBonusRequest{
		KPIBase:     decimal.NewFromInt(2_000_000),
		Attendance:  decimal.NewFromInt(600_000),
		Transport:   decimal.NewFromInt(500_000),
		Phone:       decimal.NewFromInt(200_000),
		Other:       decimal.NewFromInt(1_000_000),
		DaysPresent: 26,
	})
	require.NoError(t, err)

	f.attendance.records = nil

	saved, err := f.svc.GetBonus(context.Background(), "dev", "2025-07")
	require.NoError(t, err)
	assert.True(t, saved.Saved)
	assert.True(t, saved.KPIActual.Equal(decimal.NewFromInt(2_000_000)))
	assert.True(t, saved.Total.Equal(decimal.NewFromInt(4_300_000)))
}

func TestSaveBonusDerivesActuals(t *testing.T) {
	f := newFixture(t)
	f.addHired("dev", "Tran Van A", "Developer")

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.SaveBonus(context.Background(), "dev", "2025-07", payroll.SaveBonusRequest{
		KPIBase:          decimal.NewFromInt(2_000_000),
		ChildSupportBase: decimal.NewFromInt(1_300_000),
		Transport:        decimal.NewFromInt(500_000),
		Phone:            decimal.NewFromInt(200_000),
		DaysPresent:      13,
	})
	require.NoError(t, err)

	assert.True(t, resp.KPIActual.Equal(decimal.NewFromInt(1_000_000)))
	assert.True(t, resp.ChildSupportActual.Equal(decimal.NewFromInt(650_000)))
	assert.Equal(t, string(payroll.PaymentStatusUnpaid), resp.PaymentStatus)
}

func TestSaveBonusRejectsNegative(t *testing.T) {
	f := newFixture(t)
	f.addHired("dev", "Tran Van A", "Developer")

	_, err := f.svc.SaveBonus(context.Background(), "dev", "2025-07", payroll.SaveBonusRequest{
		KPIBase:     decimal.NewFromInt(-1),
		DaysPresent: 13,
	})
	assert.Error(t, err)
}

func TestSaveBonusKeepsPaidStatus(t *testing.T) {
	f := newFixture(t)
	f.addHired("dev", "Tran Van A", "Developer")
	f.bonuses.records[payroll.Key("dev", "2025-07")] = payroll.BonusDetails{
		ID: uuid.NewString(), EmployeeID: "dev", Month: "2025-07",
		PaymentStatus: payroll.PaymentStatusPaid,
	}

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.SaveBonus(context.Background(), "dev", "2025-07", payroll.SaveBonusRequest{
		KPIBase:     decimal.NewFromInt(2_000_000),
		DaysPresent: 26,
	})
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PaymentStatusPaid), resp.PaymentStatus)
}

func TestConfirmPaymentWithSavedBonus(t *testing.T) {
	f := newFixture(t)
	f.addHired("dev", "Tran Van A", "Developer")
	f.addPresentDays("dev", "2025-07", 26)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	_, err := f.svc.SaveBonus(context.Background(), "dev", "2025-07", payroll.SaveBonusRequest{
		KPIBase:     decimal.NewFromInt(2_000_000),
		Attendance:  decimal.NewFromInt(600_000),
		Transport:   decimal.NewFromInt(500_000),
		Phone:       decimal.NewFromInt(200_000),
		DaysPresent: 26,
	})
	require.NoError(t, err)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.ConfirmPayment(context.Background(), "dev", "2025-07")
	require.NoError(t, err)
	require.NoError(t, f.mock.ExpectationsWereMet())

	assert.Equal(t, string(payroll.PaymentStatusPaid), resp.Bonus.PaymentStatus)

	// Exactly one salary invoice, filed PAID under the salary category,
	// amount equal to the displayed net salary.
	require.Len(t, f.invoices.invoices, 1)
	inv := f.invoices.invoices[0]
	assert.Equal(t, invoice.CategorySalary, inv.Category)
	assert.Equal(t, invoice.StatusPaid, inv.Status)
	assert.Equal(t, "Chi lương T07 - Tran Van A", inv.Title)
	assert.True(t, inv.Amount.Equal(decimal.NewFromInt(22_070_000)))
	require.NotNil(t, inv.EmployeeID)
	assert.Equal(t, "dev", *inv.EmployeeID)

	// Ledger record stays PAID.
	stored := f.bonuses.records[payroll.Key("dev", "2025-07")]
	assert.Equal(t, payroll.PaymentStatusPaid, stored.PaymentStatus)
}

func TestConfirmPaymentFastPath(t *testing.T) {
	f := newFixture(t)
	f.addHired("dev", "Tran Van A", "Developer")
	f.addPresentDays("dev", "2025-07", 26)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	_, err := f.svc.ConfirmPayment(context.Background(), "dev", "2025-07")
	require.NoError(t, err)
	require.NoError(t, f.mock.ExpectationsWereMet())

	// The fallback record is written with the fast-payment note and zeroed
	// KPI/attendance.
	stored := f.bonuses.records[payroll.Key("dev", "2025-07")]
	assert.Equal(t, payroll.PaymentStatusPaid, stored.PaymentStatus)
	require.NotNil(t, stored.Note)
	assert.Equal(t, payroll.FastPaymentNote, *stored.Note)
	assert.True(t, stored.KPIActual.IsZero())
	assert.True(t, stored.Attendance.IsZero())

	// The invoice still carries the amount the caller saw on screen, which
	// was computed from the estimate.
	require.Len(t, f.invoices.invoices, 1)
	assert.True(t, f.invoices.invoices[0].Amount.Equal(decimal.NewFromInt(22_070_000)))
}

func TestConfirmPaymentTwiceConflicts(t *testing.T) {
	f := newFixture(t)
	f.addHired("dev", "Tran Van A", "Developer")
	f.addPresentDays("dev", "2025-07", 20)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	_, err := f.svc.ConfirmPayment(context.Background(), "dev", "2025-07")
	require.NoError(t, err)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err = f.svc.ConfirmPayment(context.Background(), "dev", "2025-07")
	assert.ErrorIs(t, err, payroll.ErrAlreadyPaid)
	require.NoError(t, f.mock.ExpectationsWereMet())

	// Still exactly one invoice.
	assert.Len(t, f.invoices.invoices, 1)
}

func TestConfirmPaymentFastPathRaceYieldsOneInvoice(t *testing.T) {
	f := newFixture(t)
	f.addHired("dev", "Tran Van A", "Developer")
	f.addPresentDays("dev", "2025-07", 26)

	// Both confirmations see no saved row before either writes. The locking
	// select cannot serialize them, so the second must lose on the insert
	// and surface the conflict instead of appending a second invoice.
	racing := &racingBonusRepo{stubBonusRepo: f.bonuses}
	svc := NewPayrollService(database.NewFromPool(f.mock), f.employees, f.attendance, racing, f.invoices, &stubSettingsRepo{})

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	_, err := svc.ConfirmPayment(context.Background(), "dev", "2025-07")
	require.NoError(t, err)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err = svc.ConfirmPayment(context.Background(), "dev", "2025-07")
	assert.ErrorIs(t, err, payroll.ErrAlreadyPaid)
	require.NoError(t, f.mock.ExpectationsWereMet())

	assert.Len(t, f.invoices.invoices, 1)
	stored := f.bonuses.records[payroll.Key("dev", "2025-07")]
	assert.Equal(t, payroll.PaymentStatusPaid, stored.PaymentStatus)
}

func TestSaveBonusStatusReadAndWriteShareTransaction(t *testing.T) {
	f := newFixture(t)
	f.addHired("dev", "Tran Van A", "Developer")
	f.bonuses.records[payroll.Key("dev", "2025-07")] = payroll.BonusDetails{
		ID: uuid.NewString(), EmployeeID: "dev", Month: "2025-07",
		PaymentStatus: payroll.PaymentStatusPaid,
	}

	checking := &txCheckingBonusRepo{stubBonusRepo: f.bonuses, t: t}
	svc := NewPayrollService(database.NewFromPool(f.mock), f.employees, f.attendance, checking, f.invoices, &stubSettingsRepo{})

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := svc.SaveBonus(context.Background(), "dev", "2025-07", payroll.SaveBonusRequest{
		KPIBase:     decimal.NewFromInt(2_000_000),
		DaysPresent: 26,
	})
	require.NoError(t, err)
	require.NoError(t, f.mock.ExpectationsWereMet())
	assert.Equal(t, string(payroll.PaymentStatusPaid), resp.PaymentStatus)
}

func TestConfirmPaymentRequiresHiredEmployee(t *testing.T) {
	f := newFixture(t)
	f.employees.employees["applicant"] = employee.Employee{
		ID: "applicant", Name: "Le Thi B", Position: "Tester", Status: employee.StatusWaiting,
	}

	_, err := f.svc.ConfirmPayment(context.Background(), "applicant", "2025-07")
	assert.ErrorIs(t, err, payroll.ErrEmployeeNotPayable)

	_, err = f.svc.ConfirmPayment(context.Background(), "ghost", "2025-07")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetPayslip(t *testing.T) {
	f := newFixture(t)
	f.addHired("dev", "Tran Van A", "Developer")
	f.addPresentDays("dev", "2025-07", 26)

	slip, err := f.svc.GetPayslip(context.Background(), "dev", "2025-07")
	require.NoError(t, err)

	assert.Equal(t, "OOS Software", slip.Company.Name)
	assert.Equal(t, "Tran Van A", slip.Employee.Name)
	assert.Equal(t, 26, slip.DaysPresent)
	assert.False(t, slip.BonusSaved)

	// Same numbers as the payroll table, projected into the slip layout.
	assert.True(t, slip.Earnings.ActualSalary.Equal(decimal.NewFromInt(20_000_000)))
	assert.True(t, slip.Earnings.TotalIncome.Equal(decimal.NewFromInt(23_300_000)))
	assert.True(t, slip.Deductions.PersonalIncomeTax.Equal(decimal.NewFromInt(1_230_000)))
	assert.True(t, slip.NetSalary.Equal(decimal.NewFromInt(22_070_000)))

	// Statutory lines print at zero.
	assert.True(t, slip.Deductions.SocialInsurance.IsZero())
	assert.True(t, slip.Deductions.HealthInsurance.IsZero())
	assert.True(t, slip.Deductions.UnemploymentInsurance.IsZero())
	assert.True(t, slip.Deductions.UnionFee.IsZero())
	assert.True(t, slip.Deductions.TotalDeductions.Equal(slip.Deductions.PersonalIncomeTax))
}

func TestGetPayslipMergesOtherBonus(t *testing.T) {
	f := newFixture(t)
	f.addHired("dev", "Tran Van A", "Developer")

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	_, err := f.svc.SaveBonus(context.Background(), "dev", "2025-07", payroll.SaveBonusRequest{
		PerDiem:     decimal.NewFromInt(300_000),
		Other:       decimal.NewFromInt(450_000),
		DaysPresent: 0,
	})
	require.NoError(t, err)

	slip, err := f.svc.GetPayslip(context.Background(), "dev", "2025-07")
	require.NoError(t, err)
	assert.True(t, slip.BonusSaved)
	assert.True(t, slip.Earnings.OtherBonus.Equal(decimal.NewFromInt(750_000)))
}
