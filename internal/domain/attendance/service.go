package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance and the monthly
// rollup engine.
type AttendanceService interface {
	// ClockIn opens a new session on today's day record, creating the
	// record on the first clock-in of the day
	ClockIn(ctx context.Context, req ClockInRequest) (DayResponse, error)

	// ClockOut closes the open session of today's day record
	ClockOut(ctx context.Context, req ClockOutRequest) (DayResponse, error)

	// GetMyMonth retrieves the authenticated employee's day records for a
	// month. With includeOpen the running session counts toward totals.
	GetMyMonth(ctx context.Context, month string, includeOpen bool) (ListDaysResponse, error)

	// ListByDate retrieves every employee's day record for one date (HR view)
	ListByDate(ctx context.Context, date string) ([]DayResponse, error)

	// GenerateMonthlySummary runs the month rollup for one employee and
	// persists the result by full overwrite
	GenerateMonthlySummary(ctx context.Context, req GenerateSummaryRequest) (SummaryResponse, error)

	// GetSummary retrieves a persisted monthly summary
	GetSummary(ctx context.Context, employeeID string, month string) (SummaryResponse, error)

	// GetMySummary retrieves the authenticated employee's summary
	GetMySummary(ctx context.Context, month string) (SummaryResponse, error)
}
