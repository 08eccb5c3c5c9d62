package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailExists   = errors.New("email already registered in this company")
	ErrUserInactive  = errors.New("user account is deactivated")
	ErrAlreadyActive = errors.New("user account is already active")

	ErrOwnerAccessRequired   = errors.New("owner access required")
	ErrManagerAccessRequired = errors.New("manager access required")
)
