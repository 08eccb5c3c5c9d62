package attendance

import (
	"context"
	"time"
)

// FactRepository defines data access for attendance facts and their
// check events. All methods include companyID to prevent cross-company
// data access. A missing fact for a date is reported as (nil, nil), not
// an error: callers must not conflate "no record" with a failed fetch.
type FactRepository interface {
	// Create creates a new fact for (employee, date)
	Create(ctx context.Context, fact Fact) (Fact, error)

	// GetByEmployeeAndDate retrieves the fact with its check events for one
	// day; returns (nil, nil) when no record exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*Fact, error)

	// ListByEmployeeAndRange retrieves facts with events for [from, to]
	// inclusive; dates without a record are simply absent from the result
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]Fact, error)

	// ListByCompanyAndDate retrieves all facts for one date across a
	// company, with employee names joined
	ListByCompanyAndDate(ctx context.Context, companyID string, date time.Time) ([]Fact, error)

	// AppendEvent records a check-in or check-out event
	AppendEvent(ctx context.Context, event CheckEvent) (CheckEvent, error)

	// UpdateAggregates writes first_check_in, last_check_out, hours_worked
	// and the raw status hint back onto the fact row
	UpdateAggregates(ctx context.Context, fact Fact) error

	// ListByDate retrieves all facts for one date across all companies,
	// with events; used by the nightly aggregation job
	ListByDate(ctx context.Context, date time.Time) ([]Fact, error)
}
