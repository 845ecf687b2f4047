package employee

import "context"

type EmployeeService interface {
	// Create provisions a login identity and then the employee profile,
	// as two explicit steps with separate error surfaces
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves a single employee
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List retrieves all employees
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Update applies partial changes to a profile
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes an employee profile
	Delete(ctx context.Context, id string) error
}
