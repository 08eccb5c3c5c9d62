package schedule

import "context"

// WeeklyOffRepository defines data access for weekly-off configuration.
// A lookup for an employee with no configured rows returns an empty set,
// not an error.
type WeeklyOffRepository interface {
	// GetByEmployee retrieves one employee's off-day set
	GetByEmployee(ctx context.Context, employeeID string, companyID string) (WeeklyOffConfig, error)

	// Replace atomically replaces an employee's off-day set
	Replace(ctx context.Context, config WeeklyOffConfig) error

	// GetForCompany retrieves the off-day sets of every employee in the
	// company, keyed by employee ID
	GetForCompany(ctx context.Context, companyID string) (map[string]WeeklyOffConfig, error)
}
