package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/enkonix/hr-backend-go/internal/domain/payroll"
	"github.com/enkonix/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryProfileRepositoryImpl struct {
	db *database.DB
}

func NewSalaryProfileRepository(db *database.DB) payroll.SalaryProfileRepository {
	return &salaryProfileRepositoryImpl{db: db}
}

// Upsert implements payroll.SalaryProfileRepository.
func (r *salaryProfileRepositoryImpl) Upsert(ctx context.Context, profile payroll.SalaryProfile) (payroll.SalaryProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_profiles (
			employee_id, bank_name, account_holder_name, account_number, ifsc_code,
			pan_number, uan, esic_number,
			basic_salary, house_rent_allowance, dearness_allowance, conveyance_allowance,
			medical_allowance, special_allowance, incentives, overtime_pay, other_allowances
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (employee_id) DO UPDATE SET
			bank_name = EXCLUDED.bank_name,
			account_holder_name = EXCLUDED.account_holder_name,
			account_number = EXCLUDED.account_number,
			ifsc_code = EXCLUDED.ifsc_code,
			pan_number = EXCLUDED.pan_number,
			uan = EXCLUDED.uan,
			esic_number = EXCLUDED.esic_number,
			basic_salary = EXCLUDED.basic_salary,
			house_rent_allowance = EXCLUDED.house_rent_allowance,
			dearness_allowance = EXCLUDED.dearness_allowance,
			conveyance_allowance = EXCLUDED.conveyance_allowance,
			medical_allowance = EXCLUDED.medical_allowance,
			special_allowance = EXCLUDED.special_allowance,
			incentives = EXCLUDED.incentives,
			overtime_pay = EXCLUDED.overtime_pay,
			other_allowances = EXCLUDED.other_allowances,
			updated_at = NOW()
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		profile.EmployeeID, profile.BankName, profile.AccountHolderName,
		profile.AccountNumber, profile.IFSCCode, profile.PANNumber, profile.UAN,
		profile.ESICNumber, profile.BasicSalary, profile.HouseRentAllowance,
		profile.DearnessAllowance, profile.ConveyanceAllowance, profile.MedicalAllowance,
		profile.SpecialAllowance, profile.Incentives, profile.OvertimePay,
		profile.OtherAllowances,
	).Scan(&profile.UpdatedAt)
	if err != nil {
		return payroll.SalaryProfile{}, fmt.Errorf("failed to upsert salary profile: %w", err)
	}

	return profile, nil
}

// GetByEmployeeID implements payroll.SalaryProfileRepository.
func (r *salaryProfileRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (payroll.SalaryProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, bank_name, account_holder_name, account_number, ifsc_code,
			pan_number, uan, esic_number,
			basic_salary, house_rent_allowance, dearness_allowance, conveyance_allowance,
			medical_allowance, special_allowance, incentives, overtime_pay, other_allowances,
			updated_at
		FROM salary_profiles
		WHERE employee_id = $1
	`

	var profile payroll.SalaryProfile
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&profile.EmployeeID, &profile.BankName, &profile.AccountHolderName,
		&profile.AccountNumber, &profile.IFSCCode, &profile.PANNumber, &profile.UAN,
		&profile.ESICNumber, &profile.BasicSalary, &profile.HouseRentAllowance,
		&profile.DearnessAllowance, &profile.ConveyanceAllowance, &profile.MedicalAllowance,
		&profile.SpecialAllowance, &profile.Incentives, &profile.OvertimePay,
		&profile.OtherAllowances, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryProfile{}, payroll.ErrSalaryProfileNotFound
		}
		return payroll.SalaryProfile{}, fmt.Errorf("failed to get salary profile: %w", err)
	}

	return profile, nil
}

// ListEmployeeIDsWithoutProfile implements payroll.SalaryProfileRepository.
func (r *salaryProfileRepositoryImpl) ListEmployeeIDsWithoutProfile(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id
		FROM employees e
		LEFT JOIN salary_profiles s ON s.employee_id = e.id
		WHERE s.employee_id IS NULL
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees without salary profile: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
