package payroll

import (
	"github.com/enkonix/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertSalaryProfileRequest struct {
	EmployeeID          string          `json:"employee_id"`
	BankName            string          `json:"bank_name"`
	AccountHolderName   string          `json:"account_holder_name"`
	AccountNumber       string          `json:"account_number"`
	IFSCCode            string          `json:"ifsc_code"`
	PANNumber           string          `json:"pan_number"`
	UAN                 string          `json:"uan"`
	ESICNumber          string          `json:"esic_number"`
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	HouseRentAllowance  decimal.Decimal `json:"house_rent_allowance"`
	DearnessAllowance   decimal.Decimal `json:"dearness_allowance"`
	ConveyanceAllowance decimal.Decimal `json:"conveyance_allowance"`
	MedicalAllowance    decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance    decimal.Decimal `json:"special_allowance"`
	Incentives          decimal.Decimal `json:"incentives"`
	OvertimePay         decimal.Decimal `json:"overtime_pay"`
	OtherAllowances     decimal.Decimal `json:"other_allowances"`
}

func (r *UpsertSalaryProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GeneratePayslipRequest struct {
	EmployeeID        string           `json:"employee_id"`
	Month             string           `json:"month"`
	TaxPercent        *decimal.Decimal `json:"tax_percent"`
	PenaltyPerAbsence *decimal.Decimal `json:"penalty_per_absence"`
	Notes             string           `json:"notes"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if r.TaxPercent != nil && (r.TaxPercent.IsNegative() || r.TaxPercent.GreaterThan(decimal.NewFromInt(100))) {
		errs = append(errs, validator.ValidationError{
			Field:   "tax_percent",
			Message: "tax_percent must be between 0 and 100",
		})
	}

	if r.PenaltyPerAbsence != nil && r.PenaltyPerAbsence.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "penalty_per_absence",
			Message: "penalty_per_absence must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryProfileResponse struct {
	EmployeeID          string          `json:"employee_id"`
	BankName            string          `json:"bank_name"`
	AccountHolderName   string          `json:"account_holder_name"`
	AccountNumber       string          `json:"account_number"`
	IFSCCode            string          `json:"ifsc_code"`
	PANNumber           string          `json:"pan_number"`
	UAN                 string          `json:"uan"`
	ESICNumber          string          `json:"esic_number"`
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	HouseRentAllowance  decimal.Decimal `json:"house_rent_allowance"`
	DearnessAllowance   decimal.Decimal `json:"dearness_allowance"`
	ConveyanceAllowance decimal.Decimal `json:"conveyance_allowance"`
	MedicalAllowance    decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance    decimal.Decimal `json:"special_allowance"`
	Incentives          decimal.Decimal `json:"incentives"`
	OvertimePay         decimal.Decimal `json:"overtime_pay"`
	OtherAllowances     decimal.Decimal `json:"other_allowances"`
	GrossSalary         decimal.Decimal `json:"gross_salary"`
}

type PayslipResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      *string         `json:"employee_name,omitempty"`
	Month             string          `json:"month"`
	GrossSalary       decimal.Decimal `json:"gross_salary"`
	WorkedHours       decimal.Decimal `json:"worked_hours"`
	HourRatio         decimal.Decimal `json:"hour_ratio"`
	GrossAdjusted     decimal.Decimal `json:"gross_adjusted"`
	TaxPercent        decimal.Decimal `json:"tax_percent"`
	Tax               decimal.Decimal `json:"tax"`
	PenaltyPerAbsence decimal.Decimal `json:"penalty_per_absence"`
	Penalty           decimal.Decimal `json:"penalty"`
	NetSalary         decimal.Decimal `json:"net_salary"`
	PresentDays       int             `json:"present_days"`
	AbsentDays        int             `json:"absent_days"`
	LeavesTaken       int             `json:"leaves_taken"`
	TotalWorkingDays  int             `json:"total_working_days"`
	Notes             string          `json:"notes,omitempty"`
	GeneratedBy       string          `json:"generated_by"`
	CreatedAt         string          `json:"created_at"`
}
