package leave

import (
	"context"
)

type LeaveService interface {
	// Submit files a pending leave request for the authenticated employee
	Submit(ctx context.Context, req SubmitRequestRequest) (RequestResponse, error)

	// GetMyRequests retrieves the authenticated employee's requests
	GetMyRequests(ctx context.Context) ([]RequestResponse, error)

	// ListByMonth retrieves requests for a month, optionally by status (HR)
	ListByMonth(ctx context.Context, month string, status string) ([]RequestResponse, error)

	// Decide accepts or rejects a pending request. Acceptance adjusts the
	// monthly summary and writes an audit entry; rejection only flips the
	// request status.
	Decide(ctx context.Context, req DecideRequest) (DecisionResponse, error)

	// GetHistory retrieves the audit trail of one employee (HR)
	GetHistory(ctx context.Context, employeeID string) ([]HistoryResponse, error)
}
