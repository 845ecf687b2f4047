package location

import "time"

// ZoneAssignment pins an employee to a geo-fenced work zone. RadiusMeters 0
// means work from home (no fence). The attendance engine records fence
// containment but never enforces it.
type ZoneAssignment struct {
	EmployeeID   string
	Label        string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	WorkFromHome bool
	AssignedBy   string
	AssignedAt   time.Time

	// DTO
	EmployeeName *string
}
