package location

import (
	"context"
	"log/slog"
	"time"

	"github.com/enkonix/hr-backend-go/internal/domain/employee"
	"github.com/enkonix/hr-backend-go/internal/domain/location"
)

type LocationServiceImpl struct {
	location.ZoneAssignmentRepository
	employee.EmployeeRepository
	logger *slog.Logger
}

func NewLocationService(
	zoneRepo location.ZoneAssignmentRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) location.LocationService {
	return &LocationServiceImpl{
		ZoneAssignmentRepository: zoneRepo,
		EmployeeRepository:       employeeRepo,
		logger:                   logger,
	}
}

// Assign implements location.LocationService.
func (l *LocationServiceImpl) Assign(ctx context.Context, assignedBy string, req *location.AssignZoneRequest) (*location.ZoneAssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The employee must exist; assignments never outlive their employee.
	if _, err := l.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	assignment := &location.ZoneAssignment{
		EmployeeID:   req.EmployeeID,
		Label:        req.Label,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		WorkFromHome: req.WorkFromHome,
		AssignedBy:   assignedBy,
	}

	if err := l.ZoneAssignmentRepository.Upsert(ctx, assignment); err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "work zone assigned",
		slog.String("employee_id", req.EmployeeID),
		slog.String("label", req.Label),
		slog.Bool("work_from_home", req.WorkFromHome),
	)

	return toAssignmentResponse(assignment), nil
}

// GetZone implements location.LocationService.
func (l *LocationServiceImpl) GetZone(ctx context.Context, employeeID string) (*location.ZoneAssignmentResponse, error) {
	assignment, err := l.ZoneAssignmentRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, location.ErrAssignmentNotFound
	}
	return toAssignmentResponse(assignment), nil
}

// List implements location.LocationService.
func (l *LocationServiceImpl) List(ctx context.Context) ([]location.ZoneAssignmentResponse, error) {
	assignments, err := l.ZoneAssignmentRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]location.ZoneAssignmentResponse, 0, len(assignments))
	for i := range assignments {
		responses = append(responses, *toAssignmentResponse(&assignments[i]))
	}
	return responses, nil
}

func toAssignmentResponse(assignment *location.ZoneAssignment) *location.ZoneAssignmentResponse {
	return &location.ZoneAssignmentResponse{
		EmployeeID:   assignment.EmployeeID,
		EmployeeName: assignment.EmployeeName,
		Label:        assignment.Label,
		Latitude:     assignment.Latitude,
		Longitude:    assignment.Longitude,
		RadiusMeters: assignment.RadiusMeters,
		WorkFromHome: assignment.WorkFromHome,
		AssignedBy:   assignment.AssignedBy,
		AssignedAt:   assignment.AssignedAt.Format(time.RFC3339),
	}
}
