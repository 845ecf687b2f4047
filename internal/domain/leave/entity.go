package leave

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusRejected RequestStatus = "rejected"
)

// LeaveRequest is one employee's request to cover one calendar day.
// Keyed by (employee_id, date); pending -> accepted/rejected are the only
// transitions and both are terminal.
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Reason      string
	LeaveType   string
	IsExtra     bool
	Status      RequestStatus
	HRComment   *string
	DecidedBy   *string
	DecidedAt   *time.Time
	SubmittedAt time.Time

	// DTO
	EmployeeName  *string
	EmployeePhone *string
	EmployeeEmail *string
}

// MarkedAs values recorded in the audit trail.
const (
	MarkedPresent = "present"
	MarkedAbsent  = "absent"
)

// HistoryEntry is an immutable audit record written when a leave request is
// accepted and the monthly summary is adjusted.
type HistoryEntry struct {
	ID                    string
	EmployeeID            string
	Date                  string
	Month                 string
	Reason                string
	LeaveType             string
	HRComment             string
	DecidedBy             string
	CarryForwardAtTheTime int
	CarryForwardUsed      bool
	MarkedAs              string
	FinalCarryForwardLeft int
	CreatedAt             time.Time
}
