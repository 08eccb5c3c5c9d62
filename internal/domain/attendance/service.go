package attendance

import "context"

// CheckService records raw check-in/check-out events, the upstream feed
// for attendance facts.
type CheckService interface {
	// CheckIn opens a new check cycle for today
	CheckIn(ctx context.Context, req CheckInRequest) (FactResponse, error)

	// CheckOut closes the open check cycle and refreshes worked hours
	CheckOut(ctx context.Context, req CheckOutRequest) (FactResponse, error)
}

// CalendarService assembles resolved day statuses for the calendar and
// table views.
type CalendarService interface {
	// GetMyCalendar resolves a month or week for the authenticated employee
	GetMyCalendar(ctx context.Context, filter CalendarFilter) (CalendarResponse, error)

	// GetEmployeeCalendar resolves a month or week for any employee
	// (manager view)
	GetEmployeeCalendar(ctx context.Context, filter CalendarFilter) (CalendarResponse, error)

	// GetDailyOverview resolves one date for every active employee of the
	// company (admin daily view)
	GetDailyOverview(ctx context.Context, date string) (DailyOverviewResponse, error)
}
