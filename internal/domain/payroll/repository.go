package payroll

import "context"

type SalaryProfileRepository interface {
	// Upsert writes the full profile (replace semantics)
	Upsert(ctx context.Context, profile SalaryProfile) (SalaryProfile, error)

	// GetByEmployeeID retrieves one employee's profile
	GetByEmployeeID(ctx context.Context, employeeID string) (SalaryProfile, error)

	// ListEmployeeIDsWithoutProfile returns employees that have no salary
	// profile yet (used by the salary form)
	ListEmployeeIDsWithoutProfile(ctx context.Context) ([]string, error)
}

type PayslipRepository interface {
	// Upsert writes a payslip by full overwrite for (employee_id, month)
	Upsert(ctx context.Context, payslip Payslip) (Payslip, error)

	// Get retrieves the payslip for one employee and month
	Get(ctx context.Context, employeeID string, month string) (Payslip, error)

	// ListByMonth retrieves all payslips of a month with employee names
	ListByMonth(ctx context.Context, month string) ([]Payslip, error)
}
