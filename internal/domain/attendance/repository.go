package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for per-day attendance records.
type AttendanceRepository interface {
	// CreateDay creates a new day record (first clock-in of the day)
	CreateDay(ctx context.Context, record DayRecord) (DayRecord, error)

	// GetDay retrieves the record for one employee and date.
	// Returns nil when no record exists; a missing day is not an error.
	GetDay(ctx context.Context, employeeID string, date time.Time) (*DayRecord, error)

	// UpdateDay replaces the sessions and derived totals of a record
	UpdateDay(ctx context.Context, record DayRecord) error

	// ListDaysInMonth retrieves all records of an employee whose date falls
	// inside the month starting at monthStart
	ListDaysInMonth(ctx context.Context, employeeID string, monthStart time.Time) ([]DayRecord, error)

	// ListDaysByDate retrieves all employees' records for one date (admin view)
	ListDaysByDate(ctx context.Context, date time.Time) ([]DayRecord, error)
}

// SummaryRepository defines data access for monthly summaries.
type SummaryRepository interface {
	// Save persists a summary by full overwrite (idempotent regeneration)
	Save(ctx context.Context, summary MonthlySummary) error

	// Get retrieves the summary for (employeeID, month "2006-01").
	// Returns nil when none exists yet.
	Get(ctx context.Context, employeeID string, month string) (*MonthlySummary, error)

	// GetForUpdate is Get with a row lock; must run inside a transaction
	GetForUpdate(ctx context.Context, employeeID string, month string) (*MonthlySummary, error)

	// MergeCounters updates only the leave-adjustment counters and counted
	// dates of an existing summary, guarded by the version token. Returns
	// ErrSummaryConflict when the version no longer matches.
	MergeCounters(ctx context.Context, summary MonthlySummary) error
}
