package schedule

import (
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/validator"
)

// UpdateWeeklyOffRequest replaces an employee's off-day set. Days use
// 0=Sunday .. 6=Saturday.
type UpdateWeeklyOffRequest struct {
	EmployeeID string `json:"-"`
	OffDays    []int  `json:"off_days"`
}

func (r *UpdateWeeklyOffRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.OffDays) > 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "off_days",
			Message: "an employee cannot have every day off",
		})
	}

	seen := make(map[int]bool)
	for _, day := range r.OffDays {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "off_days",
				Message: "off days must be weekday indices between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
		if seen[day] {
			errs = append(errs, validator.ValidationError{
				Field:   "off_days",
				Message: "off days must not repeat",
			})
			break
		}
		seen[day] = true
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WeeklyOffResponse struct {
	EmployeeID string `json:"employee_id"`
	OffDays    []int  `json:"off_days"`
}
