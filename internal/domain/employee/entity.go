package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
)

type Employee struct {
	ID               string
	CompanyID        string
	UserID           *string
	FullName         string
	Position         *string
	EmploymentStatus EmploymentStatus

	// DailyHours is the expected working hours for a regular working day,
	// used when seeding the day's attendance fact.
	DailyHours decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}
