package user

import "context"

type UserRepository interface {
	// Create provisions a new login identity
	Create(ctx context.Context, u User) (User, error)

	// GetByEmail retrieves a user by email, joined with its employee ID
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// ExistsByEmail reports whether the email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Delete removes a login identity
	Delete(ctx context.Context, id string) error
}
