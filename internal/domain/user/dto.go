package user

import (
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/validator"
)

// ========================================
// USER DTOs
// ========================================

// CreateUserRequest creates a login account, optionally linked to an
// existing employee record.
type CreateUserRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
	FullName   string  `json:"full_name"`
	Position   *string `json:"position,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: owner, manager, staff",
		})
	}

	if r.EmployeeID != nil && !validator.IsValidUUID(*r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if r.EmployeeID == nil && validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required when no employee_id is given",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID         string  `json:"id"`
	CompanyID  string  `json:"company_id"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	IsActive   bool    `json:"is_active"`
	CreatedAt  string  `json:"created_at"`
}
