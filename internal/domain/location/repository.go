package location

import "context"

// ZoneAssignmentRepository stores one work zone assignment per employee.
type ZoneAssignmentRepository interface {
	Upsert(ctx context.Context, assignment *ZoneAssignment) error
	// GetByEmployeeID returns nil when the employee has no assignment.
	GetByEmployeeID(ctx context.Context, employeeID string) (*ZoneAssignment, error)
	List(ctx context.Context) ([]ZoneAssignment, error)
}
