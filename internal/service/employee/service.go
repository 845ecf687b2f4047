package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/enkonix/hr-backend-go/internal/domain/employee"
	"github.com/enkonix/hr-backend-go/internal/domain/user"
	"github.com/enkonix/hr-backend-go/internal/pkg/database"
	"github.com/enkonix/hr-backend-go/internal/pkg/validator"
	"github.com/enkonix/hr-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// defaultPassword seeds new accounts until the employee changes it.
const defaultPassword = "Welcome@123"

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
	logger *slog.Logger
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	logger *slog.Logger,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		UserRepository:     userRepo,
		logger:             logger,
	}
}

// Create implements employee.EmployeeService.
//
// Provisioning is two explicit steps inside one transaction: first the login
// identity, then the profile linked to it. Either failure rolls back both.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := e.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, user.ErrEmailExists
	}

	password := req.Password
	if password == "" {
		password = defaultPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate := time.Now()
	if req.JoinDate != "" {
		joinDate, _ = validator.IsValidDate(req.JoinDate)
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		identity, err := e.UserRepository.Create(txCtx, user.User{
			Email:        req.Email,
			Name:         req.Name,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
		})
		if err != nil {
			return err
		}

		created, err = e.EmployeeRepository.Create(txCtx, employee.Employee{
			UserID:     identity.ID,
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			Department: req.Department,
			Position:   req.Position,
			JoinDate:   joinDate,
		})
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e.logger.InfoContext(ctx, "employee provisioned",
		slog.String("employee_id", created.ID),
		slog.String("email", created.Email),
	)

	return toEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := e.EmployeeRepository.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService.
// Removes the profile and its login identity together.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = postgresql.WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := e.EmployeeRepository.Delete(txCtx, id); err != nil {
			return err
		}
		return e.UserRepository.Delete(txCtx, emp.UserID)
	})
	if err != nil {
		return err
	}

	e.logger.InfoContext(ctx, "employee removed", slog.String("employee_id", id))
	return nil
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		UserID:     emp.UserID,
		Name:       emp.Name,
		Email:      emp.Email,
		Phone:      emp.Phone,
		Department: emp.Department,
		Position:   emp.Position,
		JoinDate:   emp.JoinDate.Format("2006-01-02"),
		CreatedAt:  emp.CreatedAt.Format(time.RFC3339),
	}
}
