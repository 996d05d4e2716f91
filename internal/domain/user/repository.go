package user

import "context"

type UserRepository interface {
	// Create inserts a new user and returns it with timestamps populated.
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by primary key.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email. Returns pgx.ErrNoRows when absent.
	GetByEmail(ctx context.Context, email string) (User, error)

	// ExistsByEmail checks registration uniqueness.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ListByRole returns all users holding the given role.
	ListByRole(ctx context.Context, role Role) ([]User, error)
}
