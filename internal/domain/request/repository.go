package request

import (
	"context"
	"time"
)

// RecordRepository defines data access for attendance requests. All
// methods include companyID to prevent cross-company data access.
type RecordRepository interface {
	// Create creates a new pending request
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a request by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Record, error)

	// UpdateDecision writes status, decider and rejection reason
	UpdateDecision(ctx context.Context, record Record) error

	// List retrieves requests with filters and pagination, employee names
	// joined
	List(ctx context.Context, filter ListFilter, companyID string) ([]Record, int64, error)

	// ListByEmployee retrieves one employee's requests, newest first
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]Record, error)

	// ListOverlappingRange retrieves an employee's requests whose
	// [start_date, end_date] intersects [from, to]
	ListOverlappingRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]Record, error)

	// ListOverlappingDateForCompany retrieves every request in the company
	// covering one date; used by the admin daily view
	ListOverlappingDateForCompany(ctx context.Context, companyID string, date time.Time) ([]Record, error)
}
