package employee

import "context"

type EmployeeRepository interface {
	// Create persists a new employee profile
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUserID retrieves the employee linked to a login identity
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	// List retrieves all employees ordered by name
	List(ctx context.Context) ([]Employee, error)

	// ListIDs retrieves every employee ID (used by the rollup cron)
	ListIDs(ctx context.Context) ([]string, error)

	// Update applies non-nil fields of the request
	Update(ctx context.Context, req UpdateEmployeeRequest) error

	// Delete removes an employee profile
	Delete(ctx context.Context, id string) error

	// ExistsByEmail reports whether any profile uses the email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
