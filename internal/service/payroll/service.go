package payroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/enkonix/hr-backend-go/internal/config"
	"github.com/enkonix/hr-backend-go/internal/domain/attendance"
	"github.com/enkonix/hr-backend-go/internal/domain/payroll"
	"github.com/enkonix/hr-backend-go/internal/pkg/database"
	"github.com/enkonix/hr-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db  *database.DB
	cfg config.PayrollConfig
	payroll.SalaryProfileRepository
	payroll.PayslipRepository
	attendance.SummaryRepository
	logger *slog.Logger
}

func NewPayrollService(
	db *database.DB,
	cfg config.PayrollConfig,
	profileRepo payroll.SalaryProfileRepository,
	payslipRepo payroll.PayslipRepository,
	summaryRepo attendance.SummaryRepository,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                      db,
		cfg:                     cfg,
		SalaryProfileRepository: profileRepo,
		PayslipRepository:       payslipRepo,
		SummaryRepository:       summaryRepo,
		logger:                  logger,
	}
}

// UpsertSalaryProfile implements payroll.PayrollService.
func (p *PayrollServiceImpl) UpsertSalaryProfile(ctx context.Context, req payroll.UpsertSalaryProfileRequest) (payroll.SalaryProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryProfileResponse{}, err
	}

	saved, err := p.SalaryProfileRepository.Upsert(ctx, payroll.SalaryProfile{
		EmployeeID:          req.EmployeeID,
		BankName:            req.BankName,
		AccountHolderName:   req.AccountHolderName,
		AccountNumber:       req.AccountNumber,
		IFSCCode:            req.IFSCCode,
		PANNumber:           req.PANNumber,
		UAN:                 req.UAN,
		ESICNumber:          req.ESICNumber,
		BasicSalary:         req.BasicSalary,
		HouseRentAllowance:  req.HouseRentAllowance,
		DearnessAllowance:   req.DearnessAllowance,
		ConveyanceAllowance: req.ConveyanceAllowance,
		MedicalAllowance:    req.MedicalAllowance,
		SpecialAllowance:    req.SpecialAllowance,
		Incentives:          req.Incentives,
		OvertimePay:         req.OvertimePay,
		OtherAllowances:     req.OtherAllowances,
	})
	if err != nil {
		return payroll.SalaryProfileResponse{}, err
	}

	p.logger.InfoContext(ctx, "salary profile saved",
		slog.String("employee_id", req.EmployeeID),
	)

	return toProfileResponse(saved), nil
}

// GetSalaryProfile implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetSalaryProfile(ctx context.Context, employeeID string) (payroll.SalaryProfileResponse, error) {
	profile, err := p.SalaryProfileRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payroll.SalaryProfileResponse{}, err
	}
	return toProfileResponse(profile), nil
}

// GeneratePayslip implements payroll.PayrollService.
func (p *PayrollServiceImpl) GeneratePayslip(ctx context.Context, req payroll.GeneratePayslipRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	generatedBy, _ := claims["name"].(string)

	profile, err := p.SalaryProfileRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	summary, err := p.SummaryRepository.Get(ctx, req.EmployeeID, req.Month)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	if summary == nil {
		return payroll.PayslipResponse{}, payroll.ErrSummaryRequired
	}

	taxPercent := decimal.NewFromFloat(p.cfg.DefaultTaxPercent)
	if req.TaxPercent != nil {
		taxPercent = *req.TaxPercent
	}
	penaltyPerDay := decimal.NewFromFloat(p.cfg.DefaultAbsencePenalty)
	if req.PenaltyPerAbsence != nil {
		penaltyPerDay = *req.PenaltyPerAbsence
	}

	gross := profile.Gross()
	workedHours := ParseWorkedHours(summary.TotalHours)

	projection := Project(ProjectionInput{
		Gross:         gross,
		WorkedHours:   workedHours,
		StandardHours: decimal.NewFromFloat(p.cfg.StandardMonthlyHours),
		TaxPercent:    taxPercent,
		AbsentDays:    summary.AbsentDays,
		PenaltyPerDay: penaltyPerDay,
	})

	saved, err := p.PayslipRepository.Upsert(ctx, payroll.Payslip{
		EmployeeID:        req.EmployeeID,
		Month:             req.Month,
		GrossSalary:       gross,
		HourRatio:         projection.HourRatio,
		GrossAdjusted:     projection.GrossAdjusted,
		Tax:               projection.Tax,
		Penalty:           projection.Penalty,
		NetSalary:         projection.Net,
		WorkedHours:       workedHours.Round(2),
		TaxPercent:        taxPercent,
		PenaltyPerAbsence: penaltyPerDay,
		PresentDays:       summary.PresentDays,
		AbsentDays:        summary.AbsentDays,
		LeavesTaken:       summary.LeavesTaken,
		TotalWorkingDays:  summary.TotalWorkingDays,
		Notes:             req.Notes,
		GeneratedBy:       generatedBy,
	})
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	p.logger.InfoContext(ctx, "payslip generated",
		slog.String("employee_id", req.EmployeeID),
		slog.String("month", req.Month),
		slog.String("net_salary", projection.Net.String()),
	)

	return toPayslipResponse(saved), nil
}

// GetPayslip implements payroll.PayrollService.
func (p *PayrollServiceImpl) GetPayslip(ctx context.Context, employeeID string, month string) (payroll.PayslipResponse, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return payroll.PayslipResponse{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}

	payslip, err := p.PayslipRepository.Get(ctx, employeeID, month)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return toPayslipResponse(payslip), nil
}

// ListPayslips implements payroll.PayrollService.
func (p *PayrollServiceImpl) ListPayslips(ctx context.Context, month string) ([]payroll.PayslipResponse, error) {
	if _, ok := validator.IsValidMonth(month); !ok {
		return nil, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}

	payslips, err := p.PayslipRepository.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, payslip := range payslips {
		responses = append(responses, toPayslipResponse(payslip))
	}
	return responses, nil
}

func toProfileResponse(profile payroll.SalaryProfile) payroll.SalaryProfileResponse {
	return payroll.SalaryProfileResponse{
		EmployeeID:          profile.EmployeeID,
		BankName:            profile.BankName,
		AccountHolderName:   profile.AccountHolderName,
		AccountNumber:       profile.AccountNumber,
		IFSCCode:            profile.IFSCCode,
		PANNumber:           profile.PANNumber,
		UAN:                 profile.UAN,
		ESICNumber:          profile.ESICNumber,
		BasicSalary:         profile.BasicSalary,
		HouseRentAllowance:  profile.HouseRentAllowance,
		DearnessAllowance:   profile.DearnessAllowance,
		ConveyanceAllowance: profile.ConveyanceAllowance,
		MedicalAllowance:    profile.MedicalAllowance,
		SpecialAllowance:    profile.SpecialAllowance,
		Incentives:          profile.Incentives,
		OvertimePay:         profile.OvertimePay,
		OtherAllowances:     profile.OtherAllowances,
		GrossSalary:         profile.Gross(),
	}
}

func toPayslipResponse(payslip payroll.Payslip) payroll.PayslipResponse {
	return payroll.PayslipResponse{
		ID:                payslip.ID,
		EmployeeID:        payslip.EmployeeID,
		EmployeeName:      payslip.EmployeeName,
		Month:             payslip.Month,
		GrossSalary:       payslip.GrossSalary,
		WorkedHours:       payslip.WorkedHours,
		HourRatio:         payslip.HourRatio,
		GrossAdjusted:     payslip.GrossAdjusted,
		TaxPercent:        payslip.TaxPercent,
		Tax:               payslip.Tax,
		PenaltyPerAbsence: payslip.PenaltyPerAbsence,
		Penalty:           payslip.Penalty,
		NetSalary:         payslip.NetSalary,
		PresentDays:       payslip.PresentDays,
		AbsentDays:        payslip.AbsentDays,
		LeavesTaken:       payslip.LeavesTaken,
		TotalWorkingDays:  payslip.TotalWorkingDays,
		Notes:             payslip.Notes,
		GeneratedBy:       payslip.GeneratedBy,
		CreatedAt:         payslip.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
