package user

import "context"

// UserService defines the privileged account operations. Creation and
// deactivation are owner-only and run through here rather than the
// regular employee CRUD.
type UserService interface {
	// CreateUser provisions a login account, creating the linked employee
	// record when none is supplied
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// DeactivateUser disables a login account and marks the linked employee
	// inactive; their historical attendance data stays intact
	DeactivateUser(ctx context.Context, id string) (UserResponse, error)
}
