package user

import "time"

type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

var RoleValues = []string{
	string(RoleOwner),
	string(RoleManager),
	string(RoleStaff),
}

type User struct {
	ID           string
	CompanyID    string
	EmployeeID   *string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
