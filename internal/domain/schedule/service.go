package schedule

import "context"

// WeeklyOffService manages per-employee weekly-off configuration.
type WeeklyOffService interface {
	// GetMine retrieves the authenticated employee's off days
	GetMine(ctx context.Context) (WeeklyOffResponse, error)

	// Get retrieves any employee's off days (manager view)
	Get(ctx context.Context, employeeID string) (WeeklyOffResponse, error)

	// Update replaces an employee's off-day set (manager only)
	Update(ctx context.Context, req UpdateWeeklyOffRequest) (WeeklyOffResponse, error)
}
