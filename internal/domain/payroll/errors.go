package payroll

import "errors"

var (
	ErrSalaryProfileNotFound = errors.New("salary profile not found")
	ErrPayslipNotFound       = errors.New("payslip not found")
	ErrSummaryRequired       = errors.New("monthly summary must be generated before a payslip")
)
