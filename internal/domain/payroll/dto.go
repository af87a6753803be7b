package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/oos-software/hr-backend-go/internal/domain/invoice"
	"github.com/oos-software/hr-backend-go/internal/pkg/validator"
)

// ========== BONUS DTOs ==========

type BonusResponse struct {
	EmployeeID         string          `json:"employee_id"`
	Month              string          `json:"month"`
	KPIBase            decimal.Decimal `json:"kpi_base"`
	KPIActual          decimal.Decimal `json:"kpi_actual"`
	Attendance         decimal.Decimal `json:"attendance"`
	Transport          decimal.Decimal `json:"transport"`
	Phone              decimal.Decimal `json:"phone"`
	ChildSupportBase   decimal.Decimal `json:"child_support_base"`
	ChildSupportActual decimal.Decimal `json:"child_support_actual"`
	PerDiem            decimal.Decimal `json:"per_diem"`
	Other              decimal.Decimal `json:"other"`
	Total              decimal.Decimal `json:"total"`
	PaymentStatus      string          `json:"payment_status"`
	Note               *string         `json:"note,omitempty"`
	// Saved distinguishes a persisted record from an on-the-fly estimate.
	Saved bool `json:"saved"`
}

// SaveBonusRequest carries the editable bonus fields plus the days-present
// snapshot the editor was opened with. The two *Actual fields are not
// accepted: they are always re-derived from their bases with that snapshot.
type SaveBonusRequest struct {
	KPIBase          decimal.Decimal `json:"kpi_base"`
	Attendance       decimal.Decimal `json:"attendance"`
	Transport        decimal.Decimal `json:"transport"`
	Phone            decimal.Decimal `json:"phone"`
	ChildSupportBase decimal.Decimal `json:"child_support_base"`
	PerDiem          decimal.Decimal `json:"per_diem"`
	Other            decimal.Decimal `json:"other"`
	DaysPresent      int             `json:"days_present"`
	Note             *string         `json:"note,omitempty"`
}

func (r *SaveBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	nonNegative := map[string]decimal.Decimal{
		"kpi_base":           r.KPIBase,
		"attendance":         r.Attendance,
		"transport":          r.Transport,
		"phone":              r.Phone,
		"child_support_base": r.ChildSupportBase,
		"per_diem":           r.PerDiem,
		"other":              r.Other,
	}
	for field, amount := range nonNegative {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.DaysPresent < 0 {
		errs = append(errs, validator.ValidationError{Field: "days_present", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== PAYROLL DTOs ==========

type PayrollLineItem struct {
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      string          `json:"employee_name"`
	Position          string          `json:"position"`
	BankName          *string         `json:"bank_name,omitempty"`
	BankAccountNumber *string         `json:"bank_account_number,omitempty"`
	BaseSalary        decimal.Decimal `json:"base_salary"`
	DaysPresent       int             `json:"days_present"`
	ActualSalary      decimal.Decimal `json:"actual_salary"`
	BonusTotal        decimal.Decimal `json:"bonus_total"`
	GrossIncome       decimal.Decimal `json:"gross_income"`
	Tax               decimal.Decimal `json:"tax"`
	NetSalary         decimal.Decimal `json:"net_salary"`
	BonusSaved        bool            `json:"bonus_saved"`
	PaymentStatus     string          `json:"payment_status"`
}

type PayrollSummaryResponse struct {
	Month          string            `json:"month"`
	Items          []PayrollLineItem `json:"items"`
	TotalBonus     decimal.Decimal   `json:"total_bonus"`
	TotalTax       decimal.Decimal   `json:"total_tax"`
	TotalNetSalary decimal.Decimal   `json:"total_net_salary"`
}

type ConfirmPaymentResponse struct {
	Bonus   BonusResponse           `json:"bonus"`
	Invoice invoice.InvoiceResponse `json:"invoice"`
}

// ========== PAYSLIP DTOs ==========

type PayslipCompany struct {
	Name               string `json:"name"`
	TaxID              string `json:"tax_id"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	RepresentativeName string `json:"representative_name"`
}

type PayslipEmployee struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Position          string  `json:"position"`
	BankName          *string `json:"bank_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
}

// PayslipEarnings mirrors the printed earnings panel line by line. PerDiem
// and Other are presented as a single "other bonus" line, as on the slip.
type PayslipEarnings struct {
	BaseSalary   decimal.Decimal `json:"base_salary"`
	ActualSalary decimal.Decimal `json:"actual_salary"`
	KPI          decimal.Decimal `json:"kpi"`
	Attendance   decimal.Decimal `json:"attendance"`
	Transport    decimal.Decimal `json:"transport"`
	Phone        decimal.Decimal `json:"phone"`
	ChildSupport decimal.Decimal `json:"child_support"`
	OtherBonus   decimal.Decimal `json:"other_bonus"`
	TotalIncome  decimal.Decimal `json:"total_income"`
}

// PayslipDeductions keeps the statutory insurance lines visible at zero;
// they are not modeled, only displayed.
type PayslipDeductions struct {
	SocialInsurance       decimal.Decimal `json:"social_insurance"`
	HealthInsurance       decimal.Decimal `json:"health_insurance"`
	UnemploymentInsurance decimal.Decimal `json:"unemployment_insurance"`
	PersonalIncomeTax     decimal.Decimal `json:"personal_income_tax"`
	UnionFee              decimal.Decimal `json:"union_fee"`
	Advance               decimal.Decimal `json:"advance"`
	TotalDeductions       decimal.Decimal `json:"total_deductions"`
}

type PayslipResponse struct {
	Company       PayslipCompany    `json:"company"`
	Employee      PayslipEmployee   `json:"employee"`
	Month         string            `json:"month"`
	DaysPresent   int               `json:"days_present"`
	Earnings      PayslipEarnings   `json:"earnings"`
	Deductions    PayslipDeductions `json:"deductions"`
	NetSalary     decimal.Decimal   `json:"net_salary"`
	BonusSaved    bool              `json:"bonus_saved"`
	PaymentStatus string            `json:"payment_status"`
}
