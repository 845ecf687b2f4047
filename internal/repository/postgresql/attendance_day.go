package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/enkonix/hr-backend-go/internal/domain/attendance"
	"github.com/enkonix/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// CreateDay implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CreateDay(ctx context.Context, record attendance.DayRecord) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_days (employee_id, date, sessions, location, total_hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, date, sessions, location, total_hours, created_at, updated_at
	`

	var created attendance.DayRecord
	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Date, record.Sessions, record.Location, record.TotalHours,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Sessions,
		&created.Location, &created.TotalHours, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return attendance.DayRecord{}, fmt.Errorf("failed to create attendance day: %w", err)
	}

	return created, nil
}

// GetDay implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetDay(ctx context.Context, employeeID string, date time.Time) (*attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, sessions, location, total_hours, created_at, updated_at
		FROM attendance_days
		WHERE employee_id = $1 AND date = $2
	`

	var record attendance.DayRecord
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.Sessions,
		&record.Location, &record.TotalHours, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance day: %w", err)
	}

	return &record, nil
}

// UpdateDay implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpdateDay(ctx context.Context, record attendance.DayRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_days
		SET sessions = $1, location = $2, total_hours = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, record.Sessions, record.Location, record.TotalHours, record.ID)
	if err != nil {
		return fmt.Errorf("failed to update attendance day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrDayNotFound
	}

	return nil
}

// ListDaysInMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListDaysInMonth(ctx context.Context, employeeID string, monthStart time.Time) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT id, employee_id, date, sessions, location, total_hours, created_at, updated_at
		FROM attendance_days
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days: %w", err)
	}
	defer rows.Close()

	var records []attendance.DayRecord
	for rows.Next() {
		var record attendance.DayRecord
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &record.Sessions,
			&record.Location, &record.TotalHours, &record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ListDaysByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListDaysByDate(ctx context.Context, date time.Time) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.sessions, a.location, a.total_hours,
			a.created_at, a.updated_at, e.name
		FROM attendance_days a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.DayRecord
	for rows.Next() {
		var record attendance.DayRecord
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &record.Sessions,
			&record.Location, &record.TotalHours, &record.CreatedAt, &record.UpdatedAt,
			&record.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
