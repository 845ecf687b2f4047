package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/enkonix/hr-backend-go/internal/domain/attendance"
	"github.com/enkonix/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type summaryRepositoryImpl struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) attendance.SummaryRepository {
	return &summaryRepositoryImpl{db: db}
}

// Save implements attendance.SummaryRepository.
// Regeneration is authoritative: every column including counted_dates is
// overwritten and the version token advances.
func (r *summaryRepositoryImpl) Save(ctx context.Context, summary attendance.MonthlySummary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_summaries (
			employee_id, month, present_days, half_days, absent_days,
			leaves_taken, extra_leaves, carry_forward_leaves,
			total_working_days, total_hours, counted_dates, version, generated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, NOW())
		ON CONFLICT (employee_id, month) DO UPDATE SET
			present_days = EXCLUDED.present_days,
			half_days = EXCLUDED.half_days,
			absent_days = EXCLUDED.absent_days,
			leaves_taken = EXCLUDED.leaves_taken,
			extra_leaves = EXCLUDED.extra_leaves,
			carry_forward_leaves = EXCLUDED.carry_forward_leaves,
			total_working_days = EXCLUDED.total_working_days,
			total_hours = EXCLUDED.total_hours,
			counted_dates = EXCLUDED.counted_dates,
			version = monthly_summaries.version + 1,
			generated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		summary.EmployeeID, summary.Month, summary.PresentDays, summary.HalfDays,
		summary.AbsentDays, summary.LeavesTaken, summary.ExtraLeaves,
		summary.CarryForwardLeaves, summary.TotalWorkingDays, summary.TotalHours,
		summary.CountedDates,
	)
	if err != nil {
		return fmt.Errorf("failed to save monthly summary: %w", err)
	}

	return nil
}

// Get implements attendance.SummaryRepository.
func (r *summaryRepositoryImpl) Get(ctx context.Context, employeeID string, month string) (*attendance.MonthlySummary, error) {
	return r.get(ctx, employeeID, month, false)
}

// GetForUpdate implements attendance.SummaryRepository.
func (r *summaryRepositoryImpl) GetForUpdate(ctx context.Context, employeeID string, month string) (*attendance.MonthlySummary, error) {
	return r.get(ctx, employeeID, month, true)
}

func (r *summaryRepositoryImpl) get(ctx context.Context, employeeID string, month string, forUpdate bool) (*attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, month, present_days, half_days, absent_days,
			leaves_taken, extra_leaves, carry_forward_leaves,
			total_working_days, total_hours, counted_dates, version, generated_at
		FROM monthly_summaries
		WHERE employee_id = $1 AND month = $2
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var summary attendance.MonthlySummary
	err := q.QueryRow(ctx, query, employeeID, month).Scan(
		&summary.EmployeeID, &summary.Month, &summary.PresentDays, &summary.HalfDays,
		&summary.AbsentDays, &summary.LeavesTaken, &summary.ExtraLeaves,
		&summary.CarryForwardLeaves, &summary.TotalWorkingDays, &summary.TotalHours,
		&summary.CountedDates, &summary.Version, &summary.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return &summary, nil
}

// MergeCounters implements attendance.SummaryRepository.
func (r *summaryRepositoryImpl) MergeCounters(ctx context.Context, summary attendance.MonthlySummary) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE monthly_summaries
		SET present_days = $1, absent_days = $2, leaves_taken = $3,
			extra_leaves = $4, carry_forward_leaves = $5, counted_dates = $6,
			version = version + 1
		WHERE employee_id = $7 AND month = $8 AND version = $9
	`

	tag, err := q.Exec(ctx, query,
		summary.PresentDays, summary.AbsentDays, summary.LeavesTaken,
		summary.ExtraLeaves, summary.CarryForwardLeaves, summary.CountedDates,
		summary.EmployeeID, summary.Month, summary.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to merge summary counters: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrSummaryConflict
	}

	return nil
}
