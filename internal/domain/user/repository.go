package user

import "context"

// UserRepository defines data access methods for login accounts.
// All lookups are scoped by company to prevent cross-company access.
type UserRepository interface {
	// Create creates a new user account
	Create(ctx context.Context, user User) (User, error)

	// GetByID retrieves a user by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (User, error)

	// GetByEmail retrieves a user by email within a company
	GetByEmail(ctx context.Context, email string, companyID string) (User, error)

	// GetByEmailAny retrieves a user by email across companies, used for login
	GetByEmailAny(ctx context.Context, email string) (User, error)

	// GetByIDAny retrieves a user by ID across companies, used for token refresh
	GetByIDAny(ctx context.Context, id string) (User, error)

	// SetActive activates or deactivates a user account
	SetActive(ctx context.Context, id string, companyID string, active bool) error
}
