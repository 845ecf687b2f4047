package payroll

import "context"

type PayrollService interface {
	// UpsertSalaryProfile creates or replaces a salary profile (HR)
	UpsertSalaryProfile(ctx context.Context, req UpsertSalaryProfileRequest) (SalaryProfileResponse, error)

	// GetSalaryProfile retrieves one employee's salary profile
	GetSalaryProfile(ctx context.Context, employeeID string) (SalaryProfileResponse, error)

	// GeneratePayslip projects profile + monthly summary into a persisted
	// payslip. The projection is pure; re-running with the same inputs
	// produces the same figures.
	GeneratePayslip(ctx context.Context, req GeneratePayslipRequest) (PayslipResponse, error)

	// GetPayslip retrieves a persisted payslip
	GetPayslip(ctx context.Context, employeeID string, month string) (PayslipResponse, error)

	// ListPayslips retrieves all payslips of a month (HR)
	ListPayslips(ctx context.Context, month string) ([]PayslipResponse, error)

	// ExportPayslipXLSX renders a payslip as a spreadsheet
	ExportPayslipXLSX(ctx context.Context, employeeID string, month string) ([]byte, string, error)
}
