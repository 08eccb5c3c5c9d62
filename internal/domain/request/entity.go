package request

import "time"

type Type string

const (
	TypeRegularization Type = "regularization"
	TypeLeave          Type = "leave"
	TypeWFH            Type = "wfh"
)

var TypeValues = []string{
	string(TypeRegularization),
	string(TypeLeave),
	string(TypeWFH),
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}

// Record is one employee-submitted request covering an inclusive date
// range. Single-day requests have StartDate == EndDate.
type Record struct {
	ID         string
	CompanyID  string
	EmployeeID string
	Type       Type
	Status     Status
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string

	DecidedBy       *string
	DecidedAt       *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// Covers reports whether date falls inside [StartDate, EndDate]. A range
// with EndDate before StartDate covers no dates.
func (r Record) Covers(date time.Time) bool {
	if r.EndDate.Before(r.StartDate) {
		return false
	}
	d := truncateToDay(date)
	return !d.Before(truncateToDay(r.StartDate)) && !d.After(truncateToDay(r.EndDate))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
