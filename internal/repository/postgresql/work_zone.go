package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/enkonix/hr-backend-go/internal/domain/location"
	"github.com/enkonix/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type zoneAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewZoneAssignmentRepository(db *database.DB) location.ZoneAssignmentRepository {
	return &zoneAssignmentRepositoryImpl{db: db}
}

// Upsert implements location.ZoneAssignmentRepository.
func (r *zoneAssignmentRepositoryImpl) Upsert(ctx context.Context, assignment *location.ZoneAssignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_zone_assignments (
			employee_id, label, latitude, longitude, radius_meters, work_from_home, assigned_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id) DO UPDATE SET
			label = EXCLUDED.label,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			radius_meters = EXCLUDED.radius_meters,
			work_from_home = EXCLUDED.work_from_home,
			assigned_by = EXCLUDED.assigned_by,
			assigned_at = NOW()
		RETURNING assigned_at
	`

	err := q.QueryRow(ctx, query,
		assignment.EmployeeID, assignment.Label, assignment.Latitude,
		assignment.Longitude, assignment.RadiusMeters, assignment.WorkFromHome,
		assignment.AssignedBy,
	).Scan(&assignment.AssignedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert work zone assignment: %w", err)
	}

	return nil
}

// GetByEmployeeID implements location.ZoneAssignmentRepository.
func (r *zoneAssignmentRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (*location.ZoneAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, label, latitude, longitude, radius_meters, work_from_home,
			assigned_by, assigned_at
		FROM work_zone_assignments
		WHERE employee_id = $1
	`

	var assignment location.ZoneAssignment
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&assignment.EmployeeID, &assignment.Label, &assignment.Latitude,
		&assignment.Longitude, &assignment.RadiusMeters, &assignment.WorkFromHome,
		&assignment.AssignedBy, &assignment.AssignedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get work zone assignment: %w", err)
	}

	return &assignment, nil
}

// List implements location.ZoneAssignmentRepository.
func (r *zoneAssignmentRepositoryImpl) List(ctx context.Context) ([]location.ZoneAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT z.employee_id, z.label, z.latitude, z.longitude, z.radius_meters,
			z.work_from_home, z.assigned_by, z.assigned_at, e.name
		FROM work_zone_assignments z
		JOIN employees e ON e.id = z.employee_id
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list work zone assignments: %w", err)
	}
	defer rows.Close()

	var assignments []location.ZoneAssignment
	for rows.Next() {
		var assignment location.ZoneAssignment
		err := rows.Scan(
			&assignment.EmployeeID, &assignment.Label, &assignment.Latitude,
			&assignment.Longitude, &assignment.RadiusMeters, &assignment.WorkFromHome,
			&assignment.AssignedBy, &assignment.AssignedAt, &assignment.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
