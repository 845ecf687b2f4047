package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/enkonix/hr-backend-go/internal/domain/payroll"
	"github.com/enkonix/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payslipRepositoryImpl struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepositoryImpl{db: db}
}

// Upsert implements payroll.PayslipRepository.
func (r *payslipRepositoryImpl) Upsert(ctx context.Context, payslip payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			employee_id, month, gross_salary, hour_ratio, gross_adjusted, tax, penalty,
			net_salary, worked_hours, tax_percent, penalty_per_absence,
			present_days, absent_days, leaves_taken, total_working_days, notes, generated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			gross_salary = EXCLUDED.gross_salary,
			hour_ratio = EXCLUDED.hour_ratio,
			gross_adjusted = EXCLUDED.gross_adjusted,
			tax = EXCLUDED.tax,
			penalty = EXCLUDED.penalty,
			net_salary = EXCLUDED.net_salary,
			worked_hours = EXCLUDED.worked_hours,
			tax_percent = EXCLUDED.tax_percent,
			penalty_per_absence = EXCLUDED.penalty_per_absence,
			present_days = EXCLUDED.present_days,
			absent_days = EXCLUDED.absent_days,
			leaves_taken = EXCLUDED.leaves_taken,
			total_working_days = EXCLUDED.total_working_days,
			notes = EXCLUDED.notes,
			generated_by = EXCLUDED.generated_by,
			created_at = NOW()
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		payslip.EmployeeID, payslip.Month, payslip.GrossSalary, payslip.HourRatio,
		payslip.GrossAdjusted, payslip.Tax, payslip.Penalty, payslip.NetSalary,
		payslip.WorkedHours, payslip.TaxPercent, payslip.PenaltyPerAbsence,
		payslip.PresentDays, payslip.AbsentDays, payslip.LeavesTaken,
		payslip.TotalWorkingDays, payslip.Notes, payslip.GeneratedBy,
	).Scan(&payslip.ID, &payslip.CreatedAt)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to upsert payslip: %w", err)
	}

	return payslip, nil
}

// Get implements payroll.PayslipRepository.
func (r *payslipRepositoryImpl) Get(ctx context.Context, employeeID string, month string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.month, p.gross_salary, p.hour_ratio, p.gross_adjusted,
			p.tax, p.penalty, p.net_salary, p.worked_hours, p.tax_percent, p.penalty_per_absence,
			p.present_days, p.absent_days, p.leaves_taken, p.total_working_days,
			p.notes, p.generated_by, p.created_at, e.name, e.email
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.month = $2
	`

	var payslip payroll.Payslip
	err := q.QueryRow(ctx, query, employeeID, month).Scan(
		&payslip.ID, &payslip.EmployeeID, &payslip.Month, &payslip.GrossSalary,
		&payslip.HourRatio, &payslip.GrossAdjusted, &payslip.Tax, &payslip.Penalty,
		&payslip.NetSalary, &payslip.WorkedHours, &payslip.TaxPercent,
		&payslip.PenaltyPerAbsence, &payslip.PresentDays, &payslip.AbsentDays,
		&payslip.LeavesTaken, &payslip.TotalWorkingDays, &payslip.Notes,
		&payslip.GeneratedBy, &payslip.CreatedAt, &payslip.EmployeeName, &payslip.EmployeeEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return payslip, nil
}

// ListByMonth implements payroll.PayslipRepository.
func (r *payslipRepositoryImpl) ListByMonth(ctx context.Context, month string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.month, p.gross_salary, p.hour_ratio, p.gross_adjusted,
			p.tax, p.penalty, p.net_salary, p.worked_hours, p.tax_percent, p.penalty_per_absence,
			p.present_days, p.absent_days, p.leaves_taken, p.total_working_days,
			p.notes, p.generated_by, p.created_at, e.name, e.email
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.month = $1
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		var payslip payroll.Payslip
		err := rows.Scan(
			&payslip.ID, &payslip.EmployeeID, &payslip.Month, &payslip.GrossSalary,
			&payslip.HourRatio, &payslip.GrossAdjusted, &payslip.Tax, &payslip.Penalty,
			&payslip.NetSalary, &payslip.WorkedHours, &payslip.TaxPercent,
			&payslip.PenaltyPerAbsence, &payslip.PresentDays, &payslip.AbsentDays,
			&payslip.LeavesTaken, &payslip.TotalWorkingDays, &payslip.Notes,
			&payslip.GeneratedBy, &payslip.CreatedAt, &payslip.EmployeeName, &payslip.EmployeeEmail,
		)
		if err != nil {
			return nil, err
		}
		payslips = append(payslips, payslip)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payslips, nil
}
