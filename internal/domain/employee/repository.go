package employee

import "context"

// EmployeeRepository defines data access methods for employee records.
// All methods include companyID parameter to prevent cross-company data access.
type EmployeeRepository interface {
	// Create creates a new employee record
	Create(ctx context.Context, employee Employee) (Employee, error)

	// GetByID retrieves an employee by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// ListActiveByCompanyID retrieves all active employees of a company,
	// ordered by full name
	ListActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)

	// SetEmploymentStatus updates the employment status
	SetEmploymentStatus(ctx context.Context, id string, companyID string, status EmploymentStatus) error
}
