package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryProfile holds one employee's static compensation components plus
// bank and statutory identifiers. All money fields are decimals.
type SalaryProfile struct {
	EmployeeID          string
	BankName            string
	AccountHolderName   string
	AccountNumber       string
	IFSCCode            string
	PANNumber           string
	UAN                 string
	ESICNumber          string
	BasicSalary         decimal.Decimal
	HouseRentAllowance  decimal.Decimal
	DearnessAllowance   decimal.Decimal
	ConveyanceAllowance decimal.Decimal
	MedicalAllowance    decimal.Decimal
	SpecialAllowance    decimal.Decimal
	Incentives          decimal.Decimal
	OvertimePay         decimal.Decimal
	OtherAllowances     decimal.Decimal
	UpdatedAt           time.Time
}

// Components returns the earning components in payslip order.
func (p SalaryProfile) Components() []decimal.Decimal {
	return []decimal.Decimal{
		p.BasicSalary,
		p.HouseRentAllowance,
		p.DearnessAllowance,
		p.ConveyanceAllowance,
		p.MedicalAllowance,
		p.SpecialAllowance,
		p.Incentives,
		p.OvertimePay,
		p.OtherAllowances,
	}
}

// Gross sums all earning components.
func (p SalaryProfile) Gross() decimal.Decimal {
	total := decimal.Zero
	for _, c := range p.Components() {
		total = total.Add(c)
	}
	return total
}

// Payslip is the persisted result of one payroll projection for one
// employee and month.
type Payslip struct {
	ID                string
	EmployeeID        string
	Month             string // "2006-01"
	GrossSalary       decimal.Decimal
	HourRatio         decimal.Decimal
	GrossAdjusted     decimal.Decimal
	Tax               decimal.Decimal
	Penalty           decimal.Decimal
	NetSalary         decimal.Decimal
	WorkedHours       decimal.Decimal
	TaxPercent        decimal.Decimal
	PenaltyPerAbsence decimal.Decimal
	PresentDays       int
	AbsentDays        int
	LeavesTaken       int
	TotalWorkingDays  int
	Notes             string
	GeneratedBy       string
	CreatedAt         time.Time

	// DTO
	EmployeeName  *string
	EmployeeEmail *string
}
