package status

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/attendance"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/request"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/schedule"
)

// ResolveInput carries one day's facts for one employee. Fact is nil when
// no attendance record exists for the date; that is a normal input, not an
// error, and callers must not pass a nil Fact for a fetch that failed.
// Today is injected so resolution is deterministic.
type ResolveInput struct {
	EmployeeID string
	Date       time.Time
	Today      time.Time
	Fact       *attendance.Fact
	Requests   []request.Record
	WeeklyOff  schedule.WeeklyOffConfig
}

// Resolver derives the single display status for an employee-day. It is
// pure: no clock reads, no I/O, total over its inputs.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve maps one day's raw facts to a ResolvedDayStatus. Rules are
// evaluated in a fixed precedence; the first match wins:
//
//	weekly off > approved regularization > any pending request >
//	approved leave > approved wfh > checked out > checked in >
//	needs regularization > incomplete (future) > absent
//
// A pending request deliberately outranks every status computed from raw
// timestamps so a submitted-but-unreviewed request is never displayed as
// absent or needs-regularization.
func (r *Resolver) Resolve(in ResolveInput) attendance.ResolvedDayStatus {
	date := truncateToDay(in.Date)
	today := truncateToDay(in.Today)
	isFuture := date.After(today)

	out := attendance.ResolvedDayStatus{
		EmployeeID:    in.EmployeeID,
		Date:          date,
		HoursWorked:   decimal.Zero,
		HoursExpected: decimal.Zero,
		IsFuture:      isFuture,
	}

	if in.Fact != nil {
		out.HoursWorked = in.Fact.HoursWorked
		out.HoursExpected = in.Fact.HoursExpected
		out.CheckIn = displayFirst(in.Fact.CheckIns)
		out.CheckOut = displayLast(in.Fact.CheckOuts)
	}

	out.Status = r.deriveStatus(in, date, isFuture)

	// A date that has already passed can never read as incomplete; whatever
	// placeholder was recorded, the day happened without attendance.
	if out.Status == attendance.StatusIncomplete && !isFuture {
		out.Status = attendance.StatusAbsent
	}

	return out
}

func (r *Resolver) deriveStatus(in ResolveInput, date time.Time, isFuture bool) attendance.DayStatus {
	if in.WeeklyOff.IsOffDay(date.Weekday()) {
		return attendance.StatusWeeklyOff
	}

	covering := make([]request.Record, 0, len(in.Requests))
	for _, rec := range in.Requests {
		if rec.Covers(date) {
			covering = append(covering, rec)
		}
	}

	for _, rec := range covering {
		if rec.Type == request.TypeRegularization && rec.Status == request.StatusApproved {
			return attendance.StatusRegularized
		}
	}

	for _, rec := range covering {
		if rec.Status == request.StatusPending {
			return attendance.StatusPendingRequest
		}
	}

	for _, rec := range covering {
		if rec.Type == request.TypeLeave && rec.Status == request.StatusApproved {
			return attendance.StatusApprovedLeave
		}
	}

	for _, rec := range covering {
		if rec.Type == request.TypeWFH && rec.Status == request.StatusApproved {
			return attendance.StatusWorkFromHome
		}
	}

	if in.Fact != nil {
		if in.Fact.LastCheckOut != nil {
			return attendance.StatusCheckedOut
		}
		if in.Fact.FirstCheckIn != nil {
			return attendance.StatusCheckedIn
		}
		if !isFuture &&
			in.Fact.HoursWorked.IsPositive() &&
			in.Fact.HoursWorked.LessThan(in.Fact.HoursExpected) {
			return attendance.StatusRegularize
		}
	}

	if isFuture {
		return attendance.StatusIncomplete
	}

	return attendance.StatusAbsent
}

// ResolveRange resolves every calendar date in [from, to] inclusive,
// ordered by date. Facts are matched by date; requests may be the full
// overlapping set for the range, Resolve narrows per date.
func (r *Resolver) ResolveRange(
	employeeID string,
	from, to time.Time,
	facts []attendance.Fact,
	requests []request.Record,
	weeklyOff schedule.WeeklyOffConfig,
	today time.Time,
) []attendance.ResolvedDayStatus {
	factByDate := make(map[string]*attendance.Fact, len(facts))
	for i := range facts {
		factByDate[dateKey(facts[i].Date)] = &facts[i]
	}

	start := truncateToDay(from)
	end := truncateToDay(to)

	var days []attendance.ResolvedDayStatus
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, r.Resolve(ResolveInput{
			EmployeeID: employeeID,
			Date:       d,
			Today:      today,
			Fact:       factByDate[dateKey(d)],
			Requests:   requests,
			WeeklyOff:  weeklyOff,
		}))
	}
	return days
}

// displayFirst picks the earliest event's time, paired with the most
// recently recorded coordinate among the events. Returns nil when either
// is missing; display data is never fabricated.
func displayFirst(events []attendance.CheckEvent) *attendance.CheckDisplay {
	return display(events, true)
}

// displayLast does the same with the latest event's time.
func displayLast(events []attendance.CheckEvent) *attendance.CheckDisplay {
	return display(events, false)
}

func display(events []attendance.CheckEvent, useEarliest bool) *attendance.CheckDisplay {
	if len(events) == 0 {
		return nil
	}

	selected := events[0].OccurredAt
	for _, ev := range events[1:] {
		if useEarliest && ev.OccurredAt.Before(selected) {
			selected = ev.OccurredAt
		}
		if !useEarliest && ev.OccurredAt.After(selected) {
			selected = ev.OccurredAt
		}
	}

	var coord *attendance.CheckEvent
	for i := range events {
		ev := &events[i]
		if ev.Latitude == nil || ev.Longitude == nil {
			continue
		}
		if coord == nil || !ev.OccurredAt.Before(coord.OccurredAt) {
			coord = ev
		}
	}
	if coord == nil {
		return nil
	}

	return &attendance.CheckDisplay{
		Time:      selected,
		Latitude:  *coord.Latitude,
		Longitude: *coord.Longitude,
	}
}

// MonthRange returns the first and last day of t's calendar month.
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// WeekRange returns the Monday and Sunday of the ISO week containing
// monday.
func WeekRange(monday time.Time) (time.Time, time.Time) {
	start := truncateToDay(monday)
	return start, start.AddDate(0, 0, 6)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
