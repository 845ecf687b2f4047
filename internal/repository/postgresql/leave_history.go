package postgresql

import (
	"context"
	"fmt"

	"github.com/enkonix/hr-backend-go/internal/domain/leave"
	"github.com/enkonix/hr-backend-go/internal/pkg/database"
)

type leaveHistoryRepositoryImpl struct {
	db *database.DB
}

func NewLeaveHistoryRepository(db *database.DB) leave.LeaveHistoryRepository {
	return &leaveHistoryRepositoryImpl{db: db}
}

// Insert implements leave.LeaveHistoryRepository.
func (r *leaveHistoryRepositoryImpl) Insert(ctx context.Context, entry leave.HistoryEntry) (leave.HistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_history (
			employee_id, date, month, reason, leave_type, hr_comment, decided_by,
			carry_forward_at_the_time, carry_forward_used, marked_as, final_carry_forward_left
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.Date, entry.Month, entry.Reason, entry.LeaveType,
		entry.HRComment, entry.DecidedBy, entry.CarryForwardAtTheTime,
		entry.CarryForwardUsed, entry.MarkedAs, entry.FinalCarryForwardLeft,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return leave.HistoryEntry{}, fmt.Errorf("failed to insert leave history: %w", err)
	}

	return entry, nil
}

// ListByEmployee implements leave.LeaveHistoryRepository.
func (r *leaveHistoryRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.HistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, month, reason, leave_type, hr_comment, decided_by,
			carry_forward_at_the_time, carry_forward_used, marked_as, final_carry_forward_left,
			created_at
		FROM leave_history
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave history: %w", err)
	}
	defer rows.Close()

	var entries []leave.HistoryEntry
	for rows.Next() {
		var entry leave.HistoryEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.Month, &entry.Reason,
			&entry.LeaveType, &entry.HRComment, &entry.DecidedBy,
			&entry.CarryForwardAtTheTime, &entry.CarryForwardUsed, &entry.MarkedAs,
			&entry.FinalCarryForwardLeft, &entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
