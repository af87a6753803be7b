package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/oos-software/hr-backend-go/internal/domain/attendance"
	"github.com/oos-software/hr-backend-go/internal/domain/company"
	"github.com/oos-software/hr-backend-go/internal/domain/employee"
	"github.com/oos-software/hr-backend-go/internal/domain/invoice"
	"github.com/oos-software/hr-backend-go/internal/domain/payroll"
	"github.com/oos-software/hr-backend-go/internal/pkg/database"
	"github.com/oos-software/hr-backend-go/internal/pkg/validator"
	"github.com/oos-software/hr-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	attendance.AttendanceRepository
	payroll.BonusRepository
	invoice.InvoiceRepository
	company.SettingsRepository
}

func NewPayrollService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	bonusRepository payroll.BonusRepository,
	invoiceRepository invoice.InvoiceRepository,
	settingsRepository company.SettingsRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepository,
		AttendanceRepository: attendanceRepository,
		BonusRepository:      bonusRepository,
		InvoiceRepository:    invoiceRepository,
		SettingsRepository:   settingsRepository,
	}
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, month string) (payroll.PayrollSummaryResponse, error) {
	if !validator.IsValidMonthKey(month) {
		return payroll.PayrollSummaryResponse{}, payroll.ErrInvalidMonthKey
	}

	hired, err := s.EmployeeRepository.GetHired(ctx)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to list hired employees: %w", err)
	}

	records, err := s.AttendanceRepository.ListByMonth(ctx, month)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to list attendance for month: %w", err)
	}

	saved, err := s.BonusRepository.ListByMonth(ctx, month)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to list bonus records for month: %w", err)
	}
	savedByEmployee := make(map[string]payroll.BonusDetails, len(saved))
	for _, b := range saved {
		savedByEmployee[b.EmployeeID] = b
	}

	resp := payroll.PayrollSummaryResponse{
		Month:          month,
		Items:          make([]payroll.PayrollLineItem, 0, len(hired)),
		TotalBonus:     decimal.Zero,
		TotalTax:       decimal.Zero,
		TotalNetSalary: decimal.Zero,
	}

	for _, emp := range hired {
		days := payroll.DaysPresent(records, emp.ID, month)

		bonus, bonusSaved := savedByEmployee[emp.ID]
		if !bonusSaved {
			bonus = payroll.EstimateBonus(days)
		}
		bonusTotal := payroll.BonusTotal(bonus)

		base := s.baseSalaryFor(emp)
		comp := payroll.Compute(base, days, bonusTotal)

		resp.Items = append(resp.Items, payroll.PayrollLineItem{
			EmployeeID:        emp.ID,
			EmployeeName:      emp.Name,
			Position:          emp.Position,
			BankName:          emp.BankName,
			BankAccountNumber: emp.BankAccountNumber,
			BaseSalary:        comp.BaseSalary,
			DaysPresent:       days,
			ActualSalary:      comp.ActualSalary,
			BonusTotal:        comp.BonusTotal,
			GrossIncome:       comp.GrossIncome,
			Tax:               comp.Tax,
			NetSalary:         comp.NetSalary,
			BonusSaved:        bonusSaved,
			PaymentStatus:     string(bonus.PaymentStatus),
		})

		resp.TotalBonus = resp.TotalBonus.Add(comp.BonusTotal)
		resp.TotalTax = resp.TotalTax.Add(comp.Tax)
		resp.TotalNetSalary = resp.TotalNetSalary.Add(comp.NetSalary)
	}

	return resp, nil
}

// GetBonus implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetBonus(ctx context.Context, employeeID, month string) (payroll.BonusResponse, error) {
	if !validator.IsValidMonthKey(month) {
		return payroll.BonusResponse{}, payroll.ErrInvalidMonthKey
	}
	if _, err := s.payableEmployee(ctx, employeeID); err != nil {
		return payroll.BonusResponse{}, err
	}

	bonus, err := s.BonusRepository.GetByEmployeeMonth(ctx, employeeID, month)
	if err == nil {
		return toBonusResponse(bonus, employeeID, month, true), nil
	}
	if !errors.Is(err, payroll.ErrBonusRecordNotFound) {
		return payroll.BonusResponse{}, fmt.Errorf("failed to get bonus record: %w", err)
	}

	records, err := s.AttendanceRepository.ListByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return payroll.BonusResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	days := payroll.DaysPresent(records, employeeID, month)

	return toBonusResponse(payroll.EstimateBonus(days), employeeID, month, false), nil
}

// SaveBonus implements payroll.PayrollService. The stored record is a full
// replacement; the actual KPI and child-support amounts are re-derived from
// their bases with the days-present snapshot the caller edited against.
func (s *PayrollServiceImpl) SaveBonus(ctx context.Context, employeeID, month string, req payroll.SaveBonusRequest) (payroll.BonusResponse, error) {
	if !validator.IsValidMonthKey(month) {
		return payroll.BonusResponse{}, payroll.ErrInvalidMonthKey
	}
	if err := req.Validate(); err != nil {
		return payroll.BonusResponse{}, err
	}
	if _, err := s.payableEmployee(ctx, employeeID); err != nil {
		return payroll.BonusResponse{}, err
	}

	var saved payroll.BonusDetails

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// The row lock keeps a concurrent payment confirmation from
		// landing between the status read and the write, which would
		// downgrade a paid month back to unpaid.
		status := payroll.PaymentStatusUnpaid
		if existing, err := s.BonusRepository.GetByEmployeeMonthForUpdate(txCtx, employeeID, month); err == nil {
			// Re-saving a paid month keeps it paid.
			status = existing.PaymentStatus
		} else if !errors.Is(err, payroll.ErrBonusRecordNotFound) {
			return fmt.Errorf("failed to get bonus record: %w", err)
		}

		record := payroll.BonusDetails{
			EmployeeID:         employeeID,
			Month:              month,
			KPIBase:            req.KPIBase,
			KPIActual:          payroll.ProRate(req.KPIBase, req.DaysPresent),
			Attendance:         req.Attendance,
			Transport:          req.Transport,
			Phone:              req.Phone,
			ChildSupportBase:   req.ChildSupportBase,
			ChildSupportActual: payroll.ProRate(req.ChildSupportBase, req.DaysPresent),
			PerDiem:            req.PerDiem,
			Other:              req.Other,
			PaymentStatus:      status,
			Note:               req.Note,
		}

		var err error
		saved, err = s.BonusRepository.Upsert(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to save bonus record: %w", err)
		}
		return nil
	})
	if err != nil {
		return payroll.BonusResponse{}, err
	}

	return toBonusResponse(saved, employeeID, month, true), nil
}

// ConfirmPayment implements payroll.PayrollService. The bonus write and the
// invoice write commit or roll back together. Concurrent confirmations for
// the same employee-month serialize on the bonus row lock when a record
// exists, and on the unique-index insert conflict when none does.
func (s *PayrollServiceImpl) ConfirmPayment(ctx context.Context, employeeID, month string) (payroll.ConfirmPaymentResponse, error) {
	if !validator.IsValidMonthKey(month) {
		return payroll.ConfirmPaymentResponse{}, payroll.ErrInvalidMonthKey
	}
	emp, err := s.payableEmployee(ctx, employeeID)
	if err != nil {
		return payroll.ConfirmPaymentResponse{}, err
	}

	records, err := s.AttendanceRepository.ListByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return payroll.ConfirmPaymentResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	days := payroll.DaysPresent(records, employeeID, month)

	var resp payroll.ConfirmPaymentResponse

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.BonusRepository.GetByEmployeeMonthForUpdate(txCtx, employeeID, month)
		var savedBonus payroll.BonusDetails
		var displayed payroll.BonusDetails

		switch {
		case err == nil:
			if existing.PaymentStatus == payroll.PaymentStatusPaid {
				return payroll.ErrAlreadyPaid
			}
			existing.PaymentStatus = payroll.PaymentStatusPaid
			displayed = existing
			savedBonus, err = s.BonusRepository.Upsert(txCtx, existing)
			if err != nil {
				return fmt.Errorf("failed to mark bonus paid: %w", err)
			}
		case errors.Is(err, payroll.ErrBonusRecordNotFound):
			// Fast payment: the stored fallback record differs from the
			// estimate the caller saw. The invoice amount follows the
			// estimate; the ledger keeps the fallback. The row lock above
			// locks nothing when no row exists yet, so this insert must
			// fail on conflict when another confirmation won the race.
			displayed = payroll.EstimateBonus(days)
			savedBonus, err = s.BonusRepository.Create(txCtx, payroll.FallbackBonus(employeeID, month))
			if errors.Is(err, payroll.ErrBonusRecordExists) {
				return payroll.ErrAlreadyPaid
			}
			if err != nil {
				return fmt.Errorf("failed to create fallback bonus record: %w", err)
			}
		default:
			return fmt.Errorf("failed to get bonus record: %w", err)
		}

		comp := payroll.Compute(s.baseSalaryFor(emp), days, payroll.BonusTotal(displayed))

		inv := invoice.Invoice{
			Title:      fmt.Sprintf("Chi lương T%s - %s", month[5:7], emp.Name),
			Amount:     comp.NetSalary,
			Date:       month + "-01",
			Category:   invoice.CategorySalary,
			Status:     invoice.StatusPaid,
			EmployeeID: &emp.ID,
			Notes:      salaryInvoiceNotes(),
		}
		savedInvoice, err := s.InvoiceRepository.Create(txCtx, inv)
		if err != nil {
			return fmt.Errorf("failed to create salary invoice: %w", err)
		}

		resp = payroll.ConfirmPaymentResponse{
			Bonus: toBonusResponse(savedBonus, employeeID, month, true),
			Invoice: invoice.InvoiceResponse{
				ID:         savedInvoice.ID,
				Title:      savedInvoice.Title,
				Amount:     savedInvoice.Amount,
				Date:       savedInvoice.Date,
				Category:   savedInvoice.Category,
				Status:     string(savedInvoice.Status),
				EmployeeID: savedInvoice.EmployeeID,
				Notes:      savedInvoice.Notes,
			},
		}
		return nil
	})
	if err != nil {
		return payroll.ConfirmPaymentResponse{}, err
	}

	return resp, nil
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, employeeID, month string) (payroll.PayslipResponse, error) {
	if !validator.IsValidMonthKey(month) {
		return payroll.PayslipResponse{}, payroll.ErrInvalidMonthKey
	}
	emp, err := s.payableEmployee(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	settings, err := s.SettingsRepository.Get(ctx)
	if err != nil && !errors.Is(err, company.ErrSettingsNotFound) {
		return payroll.PayslipResponse{}, fmt.Errorf("failed to get company settings: %w", err)
	}

	records, err := s.AttendanceRepository.ListByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	days := payroll.DaysPresent(records, employeeID, month)

	bonus, err := s.BonusRepository.GetByEmployeeMonth(ctx, employeeID, month)
	bonusSaved := err == nil
	if err != nil {
		if !errors.Is(err, payroll.ErrBonusRecordNotFound) {
			return payroll.PayslipResponse{}, fmt.Errorf("failed to get bonus record: %w", err)
		}
		bonus = payroll.EstimateBonus(days)
	}

	comp := payroll.Compute(s.baseSalaryFor(emp), days, payroll.BonusTotal(bonus))

	return payroll.PayslipResponse{
		Company: payroll.PayslipCompany{
			Name:               settings.Name,
			TaxID:              settings.TaxID,
			Address:            settings.Address,
			Phone:              settings.Phone,
			Email:              settings.Email,
			RepresentativeName: settings.RepresentativeName,
		},
		Employee: payroll.PayslipEmployee{
			ID:                emp.ID,
			Name:              emp.Name,
			Position:          emp.Position,
			BankName:          emp.BankName,
			BankAccountNumber: emp.BankAccountNumber,
		},
		Month:       month,
		DaysPresent: days,
		Earnings: payroll.PayslipEarnings{
			BaseSalary:   comp.BaseSalary,
			ActualSalary: comp.ActualSalary,
			KPI:          bonus.KPIActual,
			Attendance:   bonus.Attendance,
			Transport:    bonus.Transport,
			Phone:        bonus.Phone,
			ChildSupport: bonus.ChildSupportActual,
			OtherBonus:   bonus.PerDiem.Add(bonus.Other),
			TotalIncome:  comp.GrossIncome,
		},
		Deductions: payroll.PayslipDeductions{
			SocialInsurance:       decimal.Zero,
			HealthInsurance:       decimal.Zero,
			UnemploymentInsurance: decimal.Zero,
			PersonalIncomeTax:     comp.Tax,
			UnionFee:              decimal.Zero,
			Advance:               decimal.Zero,
			TotalDeductions:       comp.Tax,
		},
		NetSalary:     comp.NetSalary,
		BonusSaved:    bonusSaved,
		PaymentStatus: string(bonus.PaymentStatus),
	}, nil
}

// payableEmployee loads an employee and checks they are in payroll scope.
func (s *PayrollServiceImpl) payableEmployee(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, err
	}
	if emp.Status != employee.StatusHired {
		return employee.Employee{}, payroll.ErrEmployeeNotPayable
	}
	return emp, nil
}

func (s *PayrollServiceImpl) baseSalaryFor(emp employee.Employee) decimal.Decimal {
	base, known := payroll.BaseSalaryForPosition(emp.Position)
	if !known {
		slog.Warn("unknown position, using default base salary",
			slog.String("employee_id", emp.ID),
			slog.String("position", emp.Position),
		)
	}
	return base
}

func salaryInvoiceNotes() *string {
	notes := "Thanh toán lương tự động từ module Chi lương"
	return &notes
}

func toBonusResponse(b payroll.BonusDetails, employeeID, month string, saved bool) payroll.BonusResponse {
	return payroll.BonusResponse{
		EmployeeID:         employeeID,
		Month:              month,
		KPIBase:            b.KPIBase,
		KPIActual:          b.KPIActual,
		Attendance:         b.Attendance,
		Transport:          b.Transport,
		Phone:              b.Phone,
		ChildSupportBase:   b.ChildSupportBase,
		ChildSupportActual: b.ChildSupportActual,
		PerDiem:            b.PerDiem,
		Other:              b.Other,
		Total:              payroll.BonusTotal(b),
		PaymentStatus:      string(b.PaymentStatus),
		Note:               b.Note,
		Saved:              saved,
	}
}
