package location

import "context"

type LocationService interface {
	Assign(ctx context.Context, assignedBy string, req *AssignZoneRequest) (*ZoneAssignmentResponse, error)
	GetZone(ctx context.Context, employeeID string) (*ZoneAssignmentResponse, error)
	List(ctx context.Context) ([]ZoneAssignmentResponse, error)
}
