package schedule

import "time"

// WeeklyOffConfig is the per-employee set of weekdays that are
// non-working by default. An employee without any configured rows simply
// has no off days.
type WeeklyOffConfig struct {
	EmployeeID string
	CompanyID  string
	OffDays    []time.Weekday
}

// IsOffDay reports whether the weekday is configured as non-working.
func (c WeeklyOffConfig) IsOffDay(day time.Weekday) bool {
	for _, off := range c.OffDays {
		if off == day {
			return true
		}
	}
	return false
}
