package attendance

import (
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CheckInRequest records one check-in event. Coordinates are optional;
// when one of the pair is given, both must be.
type CheckInRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	return validateCoordinates(r.Latitude, r.Longitude)
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	return validateCoordinates(r.Latitude, r.Longitude)
}

func validateCoordinates(lat, lng *float64) error {
	var errs validator.ValidationErrors

	if (lat == nil) != (lng == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if lat != nil && (*lat < -90 || *lat > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if lng != nil && (*lng < -180 || *lng > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CalendarFilter selects one calendar month or one ISO week for an
// employee. Exactly one of Month ("2006-01") or Week ("2006-W02") must be
// set. EmployeeID is taken from the JWT claims for the staff endpoint and
// from the query for the admin endpoint.
type CalendarFilter struct {
	EmployeeID string
	Month      string
	Week       string
}

func (f *CalendarFilter) Validate() error {
	var errs validator.ValidationErrors

	hasMonth := !validator.IsEmpty(f.Month)
	hasWeek := !validator.IsEmpty(f.Week)

	if hasMonth == hasWeek {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "exactly one of month or week is required",
		})
	}

	if hasMonth {
		if _, ok := validator.IsValidMonth(f.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if hasWeek {
		if _, ok := validator.IsValidISOWeek(f.Week); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "week",
				Message: "week must be in YYYY-Www format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

type CheckEventResponse struct {
	Time      string   `json:"time"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type FactResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	FirstCheckIn  *string `json:"first_check_in,omitempty"`
	LastCheckOut  *string `json:"last_check_out,omitempty"`
	HoursWorked   string  `json:"hours_worked"`
	HoursExpected string  `json:"hours_expected"`
}

type CheckDisplayResponse struct {
	Time      string  `json:"time"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type DayStatusResponse struct {
	Date          string                `json:"date"`
	Status        string                `json:"status"`
	HoursWorked   string                `json:"hours_worked"`
	HoursExpected string                `json:"hours_expected"`
	CheckIn       *CheckDisplayResponse `json:"check_in,omitempty"`
	CheckOut      *CheckDisplayResponse `json:"check_out,omitempty"`
	IsFuture      bool                  `json:"is_future"`
}

type CalendarResponse struct {
	EmployeeID string              `json:"employee_id"`
	From       string              `json:"from"`
	To         string              `json:"to"`
	Days       []DayStatusResponse `json:"days"`
}

type DailyOverviewRow struct {
	EmployeeID   string            `json:"employee_id"`
	EmployeeName string            `json:"employee_name"`
	Position     *string           `json:"position,omitempty"`
	Day          DayStatusResponse `json:"day"`
}

type DailyOverviewResponse struct {
	Date      string             `json:"date"`
	Employees []DailyOverviewRow `json:"employees"`
}
