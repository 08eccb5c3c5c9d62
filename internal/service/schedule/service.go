package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/employee"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/schedule"
)

type WeeklyOffServiceImpl struct {
	schedule.WeeklyOffRepository
	employee.EmployeeRepository
}

func NewWeeklyOffService(
	weeklyOffRepo schedule.WeeklyOffRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.WeeklyOffService {
	return &WeeklyOffServiceImpl{
		WeeklyOffRepository: weeklyOffRepo,
		EmployeeRepository:  employeeRepo,
	}
}

// GetMine implements schedule.WeeklyOffService.
func (s *WeeklyOffServiceImpl) GetMine(ctx context.Context) (schedule.WeeklyOffResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return schedule.WeeklyOffResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return schedule.WeeklyOffResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return schedule.WeeklyOffResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	config, err := s.WeeklyOffRepository.GetByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return schedule.WeeklyOffResponse{}, fmt.Errorf("failed to get weekly-off config: %w", err)
	}

	return mapConfigToResponse(config), nil
}

// Get implements schedule.WeeklyOffService.
func (s *WeeklyOffServiceImpl) Get(ctx context.Context, employeeID string) (schedule.WeeklyOffResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return schedule.WeeklyOffResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return schedule.WeeklyOffResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return schedule.WeeklyOffResponse{}, employee.ErrEmployeeNotFound
		}
		return schedule.WeeklyOffResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	config, err := s.WeeklyOffRepository.GetByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return schedule.WeeklyOffResponse{}, fmt.Errorf("failed to get weekly-off config: %w", err)
	}

	return mapConfigToResponse(config), nil
}

// Update implements schedule.WeeklyOffService.
func (s *WeeklyOffServiceImpl) Update(ctx context.Context, req schedule.UpdateWeeklyOffRequest) (schedule.WeeklyOffResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeeklyOffResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return schedule.WeeklyOffResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return schedule.WeeklyOffResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return schedule.WeeklyOffResponse{}, employee.ErrEmployeeNotFound
		}
		return schedule.WeeklyOffResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	offDays := make([]time.Weekday, 0, len(req.OffDays))
	for _, day := range req.OffDays {
		offDays = append(offDays, time.Weekday(day))
	}

	config := schedule.WeeklyOffConfig{
		EmployeeID: req.EmployeeID,
		CompanyID:  companyID,
		OffDays:    offDays,
	}

	if err := s.WeeklyOffRepository.Replace(ctx, config); err != nil {
		return schedule.WeeklyOffResponse{}, fmt.Errorf("failed to replace weekly-off config: %w", err)
	}

	return mapConfigToResponse(config), nil
}

func mapConfigToResponse(config schedule.WeeklyOffConfig) schedule.WeeklyOffResponse {
	days := make([]int, 0, len(config.OffDays))
	for _, day := range config.OffDays {
		days = append(days, int(day))
	}
	return schedule.WeeklyOffResponse{
		EmployeeID: config.EmployeeID,
		OffDays:    days,
	}
}
