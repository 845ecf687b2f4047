package user

import "time"

type Role string

const (
	RoleHR       Role = "hr"       // HR administrator - approves leave, runs payroll
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeID *string
}

// IsHR checks if the user can review leave and manage payroll
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}
