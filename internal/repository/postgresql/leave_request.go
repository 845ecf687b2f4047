package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/enkonix/hr-backend-go/internal/domain/leave"
	"github.com/enkonix/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, date, reason, leave_type, is_extra, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, date, reason, leave_type, is_extra, status,
			hr_comment, decided_by, decided_at, submitted_at
	`

	var created leave.LeaveRequest
	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.Date, request.Reason, request.LeaveType,
		request.IsExtra, request.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Reason,
		&created.LeaveType, &created.IsExtra, &created.Status,
		&created.HRComment, &created.DecidedBy, &created.DecidedAt, &created.SubmittedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.LeaveRequest{}, leave.ErrDuplicateRequest
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// GetByEmployeeAndDate implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.date, l.reason, l.leave_type, l.is_extra, l.status,
			l.hr_comment, l.decided_by, l.decided_at, l.submitted_at,
			e.name, e.phone, e.email
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.employee_id = $1 AND l.date = $2
	`

	var request leave.LeaveRequest
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&request.ID, &request.EmployeeID, &request.Date, &request.Reason,
		&request.LeaveType, &request.IsExtra, &request.Status,
		&request.HRComment, &request.DecidedBy, &request.DecidedAt, &request.SubmittedAt,
		&request.EmployeeName, &request.EmployeePhone, &request.EmployeeEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return request, nil
}

// ListByMonth implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByMonth(ctx context.Context, monthStart time.Time, status leave.RequestStatus) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT l.id, l.employee_id, l.date, l.reason, l.leave_type, l.is_extra, l.status,
			l.hr_comment, l.decided_by, l.decided_at, l.submitted_at,
			e.name, e.phone, e.email
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.date >= $1 AND l.date < $2
	`
	args := []any{monthStart, monthEnd}

	if status != "" {
		query += " AND l.status = $3"
		args = append(args, status)
	}
	query += " ORDER BY l.submitted_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var request leave.LeaveRequest
		err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.Date, &request.Reason,
			&request.LeaveType, &request.IsExtra, &request.Status,
			&request.HRComment, &request.DecidedBy, &request.DecidedAt, &request.SubmittedAt,
			&request.EmployeeName, &request.EmployeePhone, &request.EmployeeEmail,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, reason, leave_type, is_extra, status,
			hr_comment, decided_by, decided_at, submitted_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var request leave.LeaveRequest
		err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.Date, &request.Reason,
			&request.LeaveType, &request.IsExtra, &request.Status,
			&request.HRComment, &request.DecidedBy, &request.DecidedAt, &request.SubmittedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// Decide implements leave.LeaveRequestRepository.
// The status guard in WHERE makes the transition race-safe: a request that
// was already decided is left untouched.
func (r *leaveRequestRepositoryImpl) Decide(ctx context.Context, employeeID string, date time.Time, status leave.RequestStatus, comment string, decidedBy string, decidedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, hr_comment = $2, decided_by = $3, decided_at = $4
		WHERE employee_id = $5 AND date = $6 AND status = $7
	`

	tag, err := q.Exec(ctx, query, status, comment, decidedBy, decidedAt, employeeID, date, leave.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to decide leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish missing from already-decided.
		_, getErr := r.GetByEmployeeAndDate(ctx, employeeID, date)
		if getErr != nil {
			return getErr
		}
		return leave.ErrAlreadyProcessed
	}

	return nil
}
