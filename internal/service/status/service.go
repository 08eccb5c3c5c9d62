package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/attendance"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/employee"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/request"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/schedule"
	"github.com/worklens-hq/worklens-backend-go/internal/pkg/validator"
)

type CalendarServiceImpl struct {
	attendance.FactRepository
	request.RecordRepository
	schedule.WeeklyOffRepository
	employee.EmployeeRepository
	resolver *Resolver

	// now is injected so "today" is fixed in tests.
	now func() time.Time
}

func NewCalendarService(
	factRepo attendance.FactRepository,
	recordRepo request.RecordRepository,
	weeklyOffRepo schedule.WeeklyOffRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.CalendarService {
	return &CalendarServiceImpl{
		FactRepository:      factRepo,
		RecordRepository:    recordRepo,
		WeeklyOffRepository: weeklyOffRepo,
		EmployeeRepository:  employeeRepo,
		resolver:            NewResolver(),
		now:                 time.Now,
	}
}

// GetMyCalendar implements attendance.CalendarService.
func (s *CalendarServiceImpl) GetMyCalendar(ctx context.Context, filter attendance.CalendarFilter) (attendance.CalendarResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.CalendarResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return attendance.CalendarResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return attendance.CalendarResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	filter.EmployeeID = employeeID
	return s.assembleCalendar(ctx, filter, companyID)
}

// GetEmployeeCalendar implements attendance.CalendarService.
func (s *CalendarServiceImpl) GetEmployeeCalendar(ctx context.Context, filter attendance.CalendarFilter) (attendance.CalendarResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.CalendarResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return attendance.CalendarResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	if validator.IsEmpty(filter.EmployeeID) {
		return attendance.CalendarResponse{}, validator.ValidationErrors{{
			Field:   "employee_id",
			Message: "employee_id is required",
		}}
	}

	// Confirm the employee belongs to the caller's company before exposing
	// their calendar.
	if _, err := s.EmployeeRepository.GetByID(ctx, filter.EmployeeID, companyID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.CalendarResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.CalendarResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return s.assembleCalendar(ctx, filter, companyID)
}

func (s *CalendarServiceImpl) assembleCalendar(ctx context.Context, filter attendance.CalendarFilter, companyID string) (attendance.CalendarResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.CalendarResponse{}, err
	}

	var from, to time.Time
	if filter.Month != "" {
		month, _ := validator.IsValidMonth(filter.Month)
		from, to = MonthRange(month)
	} else {
		monday, _ := validator.IsValidISOWeek(filter.Week)
		from, to = WeekRange(monday)
	}

	facts, err := s.FactRepository.ListByEmployeeAndRange(ctx, filter.EmployeeID, from, to, companyID)
	if err != nil {
		return attendance.CalendarResponse{}, fmt.Errorf("failed to list attendance facts: %w", err)
	}

	requests, err := s.RecordRepository.ListOverlappingRange(ctx, filter.EmployeeID, from, to, companyID)
	if err != nil {
		return attendance.CalendarResponse{}, fmt.Errorf("failed to list requests: %w", err)
	}

	weeklyOff, err := s.WeeklyOffRepository.GetByEmployee(ctx, filter.EmployeeID, companyID)
	if err != nil {
		return attendance.CalendarResponse{}, fmt.Errorf("failed to get weekly-off config: %w", err)
	}

	days := s.resolver.ResolveRange(filter.EmployeeID, from, to, facts, requests, weeklyOff, s.now().UTC())

	responses := make([]attendance.DayStatusResponse, 0, len(days))
	for _, day := range days {
		responses = append(responses, mapDayStatusToResponse(day))
	}

	return attendance.CalendarResponse{
		EmployeeID: filter.EmployeeID,
		From:       from.Format("2006-01-02"),
		To:         to.Format("2006-01-02"),
		Days:       responses,
	}, nil
}

// GetDailyOverview implements attendance.CalendarService.
func (s *CalendarServiceImpl) GetDailyOverview(ctx context.Context, dateStr string) (attendance.DailyOverviewResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.DailyOverviewResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return attendance.DailyOverviewResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	date, okDate := validator.IsValidDate(dateStr)
	if !okDate {
		return attendance.DailyOverviewResponse{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	employees, err := s.EmployeeRepository.ListActiveByCompanyID(ctx, companyID)
	if err != nil {
		return attendance.DailyOverviewResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	facts, err := s.FactRepository.ListByCompanyAndDate(ctx, companyID, date)
	if err != nil {
		return attendance.DailyOverviewResponse{}, fmt.Errorf("failed to list attendance facts: %w", err)
	}
	factByEmployee := make(map[string]*attendance.Fact, len(facts))
	for i := range facts {
		factByEmployee[facts[i].EmployeeID] = &facts[i]
	}

	requests, err := s.RecordRepository.ListOverlappingDateForCompany(ctx, companyID, date)
	if err != nil {
		return attendance.DailyOverviewResponse{}, fmt.Errorf("failed to list requests: %w", err)
	}
	requestsByEmployee := make(map[string][]request.Record)
	for _, rec := range requests {
		requestsByEmployee[rec.EmployeeID] = append(requestsByEmployee[rec.EmployeeID], rec)
	}

	weeklyOffs, err := s.WeeklyOffRepository.GetForCompany(ctx, companyID)
	if err != nil {
		return attendance.DailyOverviewResponse{}, fmt.Errorf("failed to get weekly-off configs: %w", err)
	}

	today := s.now().UTC()
	rows := make([]attendance.DailyOverviewRow, 0, len(employees))
	for _, emp := range employees {
		resolved := s.resolver.Resolve(ResolveInput{
			EmployeeID: emp.ID,
			Date:       date,
			Today:      today,
			Fact:       factByEmployee[emp.ID],
			Requests:   requestsByEmployee[emp.ID],
			WeeklyOff:  weeklyOffs[emp.ID],
		})

		rows = append(rows, attendance.DailyOverviewRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			Position:     emp.Position,
			Day:          mapDayStatusToResponse(resolved),
		})
	}

	return attendance.DailyOverviewResponse{
		Date:      date.Format("2006-01-02"),
		Employees: rows,
	}, nil
}

// mapDayStatusToResponse converts a ResolvedDayStatus to its response shape
func mapDayStatusToResponse(day attendance.ResolvedDayStatus) attendance.DayStatusResponse {
	resp := attendance.DayStatusResponse{
		Date:          day.Date.Format("2006-01-02"),
		Status:        string(day.Status),
		HoursWorked:   day.HoursWorked.StringFixed(2),
		HoursExpected: day.HoursExpected.StringFixed(2),
		IsFuture:      day.IsFuture,
	}

	if day.CheckIn != nil {
		resp.CheckIn = &attendance.CheckDisplayResponse{
			Time:      day.CheckIn.Time.Format("2006-01-02 15:04:05"),
			Latitude:  day.CheckIn.Latitude,
			Longitude: day.CheckIn.Longitude,
		}
	}

	if day.CheckOut != nil {
		resp.CheckOut = &attendance.CheckDisplayResponse{
			Time:      day.CheckOut.Time.Format("2006-01-02 15:04:05"),
			Latitude:  day.CheckOut.Latitude,
			Longitude: day.CheckOut.Longitude,
		}
	}

	return resp
}
