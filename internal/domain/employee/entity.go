package employee

import "time"

type Employee struct {
	ID         string
	UserID     string
	Name       string
	Email      string
	Phone      string
	Department string
	Position   string
	JoinDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
