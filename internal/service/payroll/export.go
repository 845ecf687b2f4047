package payroll

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportPayslipXLSX implements payroll.PayrollService.
func (p *PayrollServiceImpl) ExportPayslipXLSX(ctx context.Context, employeeID string, month string) ([]byte, string, error) {
	payslip, err := p.PayslipRepository.Get(ctx, employeeID, month)
	if err != nil {
		return nil, "", err
	}

	profile, err := p.SalaryProfileRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payslip"
	f.SetSheetName("Sheet1", sheet)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	name := ""
	if payslip.EmployeeName != nil {
		name = *payslip.EmployeeName
	}

	f.MergeCell(sheet, "A1", "B1")
	f.SetCellValue(sheet, "A1", fmt.Sprintf("Payslip - %s", payslip.Month))
	f.SetCellStyle(sheet, "A1", "B1", titleStyle)

	rows := [][2]any{
		{"Employee", name},
		{"Month", payslip.Month},
		{"Bank", profile.BankName},
		{"Account Holder", profile.AccountHolderName},
		{"Account Number", profile.AccountNumber},
		{"IFSC", profile.IFSCCode},
		{"PAN", profile.PANNumber},
		{"UAN", profile.UAN},
		{"ESIC", profile.ESICNumber},
		{"", ""},
		{"Earnings", ""},
		{"Basic Salary", profile.BasicSalary.InexactFloat64()},
		{"House Rent Allowance", profile.HouseRentAllowance.InexactFloat64()},
		{"Dearness Allowance", profile.DearnessAllowance.InexactFloat64()},
		{"Conveyance Allowance", profile.ConveyanceAllowance.InexactFloat64()},
		{"Medical Allowance", profile.MedicalAllowance.InexactFloat64()},
		{"Special Allowance", profile.SpecialAllowance.InexactFloat64()},
		{"Incentives", profile.Incentives.InexactFloat64()},
		{"Overtime Pay", profile.OvertimePay.InexactFloat64()},
		{"Other Allowances", profile.OtherAllowances.InexactFloat64()},
		{"Gross Salary", payslip.GrossSalary.InexactFloat64()},
		{"", ""},
		{"Attendance", ""},
		{"Worked Hours", payslip.WorkedHours.InexactFloat64()},
		{"Hour Ratio", payslip.HourRatio.InexactFloat64()},
		{"Present Days", payslip.PresentDays},
		{"Absent Days", payslip.AbsentDays},
		{"Leaves Taken", payslip.LeavesTaken},
		{"Working Days", payslip.TotalWorkingDays},
		{"", ""},
		{"Deductions", ""},
		{"Adjusted Gross", payslip.GrossAdjusted.InexactFloat64()},
		{fmt.Sprintf("Tax (%s%%)", payslip.TaxPercent.String()), payslip.Tax.InexactFloat64()},
		{"Absence Penalty", payslip.Penalty.InexactFloat64()},
		{"", ""},
		{"Net Salary", payslip.NetSalary.InexactFloat64()},
	}

	sectionRows := map[string]struct{}{"Earnings": {}, "Attendance": {}, "Deductions": {}, "Net Salary": {}}

	for i, row := range rows {
		rowNum := i + 3
		labelCell := fmt.Sprintf("A%d", rowNum)
		valueCell := fmt.Sprintf("B%d", rowNum)
		f.SetCellValue(sheet, labelCell, row[0])
		f.SetCellValue(sheet, valueCell, row[1])
		if label, ok := row[0].(string); ok {
			if _, section := sectionRows[label]; section {
				f.SetCellStyle(sheet, labelCell, valueCell, headerStyle)
			}
		}
	}

	f.SetColWidth(sheet, "A", "A", 24)
	f.SetColWidth(sheet, "B", "B", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render payslip workbook: %w", err)
	}

	filename := fmt.Sprintf("payslip_%s_%s.xlsx", payslip.EmployeeID, payslip.Month)
	return buf.Bytes(), filename, nil
}
