package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// Create files a new pending request
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByEmployeeAndDate retrieves the request for one employee and date
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (LeaveRequest, error)

	// ListByMonth retrieves requests whose date falls in the month, joined
	// with employee contact fields; status filters when non-empty
	ListByMonth(ctx context.Context, monthStart time.Time, status RequestStatus) ([]LeaveRequest, error)

	// ListByEmployee retrieves all requests of one employee
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// Decide sets status, comment and reviewer on a still-pending request.
	// Returns ErrAlreadyProcessed when the request is no longer pending.
	Decide(ctx context.Context, employeeID string, date time.Time, status RequestStatus, comment string, decidedBy string, decidedAt time.Time) error
}

type LeaveHistoryRepository interface {
	// Insert appends an immutable audit entry
	Insert(ctx context.Context, entry HistoryEntry) (HistoryEntry, error)

	// ListByEmployee retrieves audit entries of one employee, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]HistoryEntry, error)
}
