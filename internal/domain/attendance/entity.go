package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fact is the raw recorded attendance data for one employee on one
// calendar day. The date is timezone-naive: it identifies a working day,
// not an instant.
type Fact struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time

	FirstCheckIn *time.Time
	LastCheckOut *time.Time

	HoursWorked   decimal.Decimal
	HoursExpected decimal.Decimal

	// RawStatus is an optional pre-aggregated hint stamped by the nightly
	// aggregation job. Display status is always derived, never read from
	// here directly.
	RawStatus *string

	// A day may hold multiple check-in/check-out cycles. Events are kept
	// in recording order.
	CheckIns  []CheckEvent
	CheckOuts []CheckEvent

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// HasOpenCycle reports whether the day has a check-in without a matching
// check-out yet.
func (f *Fact) HasOpenCycle() bool {
	return len(f.CheckIns) > len(f.CheckOuts)
}

type EventType string

const (
	EventCheckIn  EventType = "check_in"
	EventCheckOut EventType = "check_out"
)

// CheckEvent is a single check-in or check-out occurrence. Coordinates are
// optional; some capture channels do not report location.
type CheckEvent struct {
	ID         string
	FactID     string
	Type       EventType
	OccurredAt time.Time
	Latitude   *float64
	Longitude  *float64
	CreatedAt  time.Time
}

// DayStatus is the closed set of display statuses. It is the contract
// between the resolver and every calendar/table consumer; adding a value
// is a breaking change for all of them.
type DayStatus string

const (
	StatusWeeklyOff      DayStatus = "weekly_off"
	StatusRegularized    DayStatus = "regularized"
	StatusPendingRequest DayStatus = "pending_request"
	StatusApprovedLeave  DayStatus = "approved_leave"
	StatusWorkFromHome   DayStatus = "work_from_home"
	StatusCheckedOut     DayStatus = "checked_out"
	StatusCheckedIn      DayStatus = "checked_in"
	StatusRegularize     DayStatus = "regularize"
	StatusIncomplete     DayStatus = "incomplete"
	StatusAbsent         DayStatus = "absent"
)

var DayStatusValues = []string{
	string(StatusWeeklyOff),
	string(StatusRegularized),
	string(StatusPendingRequest),
	string(StatusApprovedLeave),
	string(StatusWorkFromHome),
	string(StatusCheckedOut),
	string(StatusCheckedIn),
	string(StatusRegularize),
	string(StatusIncomplete),
	string(StatusAbsent),
}

// CheckDisplay pairs an event time with its coordinate for calendar cells.
type CheckDisplay struct {
	Time      time.Time
	Latitude  float64
	Longitude float64
}

// ResolvedDayStatus is the derived per-day view. It is recomputed on
// demand and never persisted.
type ResolvedDayStatus struct {
	EmployeeID    string
	Date          time.Time
	Status        DayStatus
	HoursWorked   decimal.Decimal
	HoursExpected decimal.Decimal
	CheckIn       *CheckDisplay
	CheckOut      *CheckDisplay
	IsFuture      bool
}
