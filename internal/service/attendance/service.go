package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/attendance"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/employee"
)

type CheckServiceImpl struct {
	attendance.FactRepository
	employee.EmployeeRepository

	now func() time.Time
}

func NewCheckService(
	factRepo attendance.FactRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.CheckService {
	return &CheckServiceImpl{
		FactRepository:     factRepo,
		EmployeeRepository: employeeRepo,
		now:                time.Now,
	}
}

// CheckIn implements attendance.CheckService.
func (s *CheckServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.FactResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.FactResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.FactResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return attendance.FactResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return attendance.FactResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	nowUTC := s.now().UTC()
	date := truncateToDay(nowUTC)

	fact, err := s.FactRepository.GetByEmployeeAndDate(ctx, employeeID, date, companyID)
	if err != nil {
		return attendance.FactResponse{}, fmt.Errorf("failed to get attendance fact: %w", err)
	}

	if fact == nil {
		emp, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return attendance.FactResponse{}, employee.ErrEmployeeNotFound
			}
			return attendance.FactResponse{}, fmt.Errorf("failed to get employee: %w", err)
		}

		created, err := s.FactRepository.Create(ctx, attendance.Fact{
			ID:            uuid.New().String(),
			EmployeeID:    employeeID,
			CompanyID:     companyID,
			Date:          date,
			HoursWorked:   decimal.Zero,
			HoursExpected: emp.DailyHours,
		})
		if err != nil {
			return attendance.FactResponse{}, fmt.Errorf("failed to create attendance fact: %w", err)
		}
		fact = &created
	}

	if fact.HasOpenCycle() {
		return attendance.FactResponse{}, attendance.ErrOpenCycleExists
	}

	event, err := s.FactRepository.AppendEvent(ctx, attendance.CheckEvent{
		ID:         uuid.New().String(),
		FactID:     fact.ID,
		Type:       attendance.EventCheckIn,
		OccurredAt: nowUTC,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		return attendance.FactResponse{}, fmt.Errorf("failed to append check-in event: %w", err)
	}
	fact.CheckIns = append(fact.CheckIns, event)

	if fact.FirstCheckIn == nil {
		fact.FirstCheckIn = &nowUTC
	}

	if err := s.FactRepository.UpdateAggregates(ctx, *fact); err != nil {
		return attendance.FactResponse{}, fmt.Errorf("failed to update attendance fact: %w", err)
	}

	return mapFactToResponse(*fact), nil
}

// CheckOut implements attendance.CheckService.
func (s *CheckServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.FactResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.FactResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.FactResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return attendance.FactResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return attendance.FactResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	nowUTC := s.now().UTC()
	date := truncateToDay(nowUTC)

	fact, err := s.FactRepository.GetByEmployeeAndDate(ctx, employeeID, date, companyID)
	if err != nil {
		return attendance.FactResponse{}, fmt.Errorf("failed to get attendance fact: %w", err)
	}

	if fact == nil || !fact.HasOpenCycle() {
		return attendance.FactResponse{}, attendance.ErrNotCheckedIn
	}

	event, err := s.FactRepository.AppendEvent(ctx, attendance.CheckEvent{
		ID:         uuid.New().String(),
		FactID:     fact.ID,
		Type:       attendance.EventCheckOut,
		OccurredAt: nowUTC,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		return attendance.FactResponse{}, fmt.Errorf("failed to append check-out event: %w", err)
	}
	fact.CheckOuts = append(fact.CheckOuts, event)

	fact.LastCheckOut = &nowUTC
	fact.HoursWorked = attendance.WorkedHours(fact.CheckIns, fact.CheckOuts)

	if err := s.FactRepository.UpdateAggregates(ctx, *fact); err != nil {
		return attendance.FactResponse{}, fmt.Errorf("failed to update attendance fact: %w", err)
	}

	return mapFactToResponse(*fact), nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func mapFactToResponse(fact attendance.Fact) attendance.FactResponse {
	return attendance.FactResponse{
		ID:            fact.ID,
		EmployeeID:    fact.EmployeeID,
		Date:          fact.Date.Format("2006-01-02"),
		FirstCheckIn:  timePtrToString(fact.FirstCheckIn),
		LastCheckOut:  timePtrToString(fact.LastCheckOut),
		HoursWorked:   fact.HoursWorked.StringFixed(2),
		HoursExpected: fact.HoursExpected.StringFixed(2),
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
