package request

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/request"
)

type RecordServiceImpl struct {
	request.RecordRepository

	now func() time.Time
}

func NewRecordService(recordRepo request.RecordRepository) request.RecordService {
	return &RecordServiceImpl{
		RecordRepository: recordRepo,
		now:              time.Now,
	}
}

// Submit implements request.RecordService.
func (s *RecordServiceImpl) Submit(ctx context.Context, req request.SubmitRequest) (request.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RecordResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return request.RecordResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return request.RecordResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return request.RecordResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	record, err := s.RecordRepository.Create(ctx, request.Record{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		EmployeeID: employeeID,
		Type:       request.Type(req.Type),
		Status:     request.StatusPending,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
	})
	if err != nil {
		return request.RecordResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	return mapRecordToResponse(record), nil
}

// ListMine implements request.RecordService.
func (s *RecordServiceImpl) ListMine(ctx context.Context) ([]request.RecordResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}

	records, err := s.RecordRepository.ListByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	responses := make([]request.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapRecordToResponse(record))
	}
	return responses, nil
}

// List implements request.RecordService.
func (s *RecordServiceImpl) List(ctx context.Context, filter request.ListFilter) (request.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return request.ListRecordsResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return request.ListRecordsResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return request.ListRecordsResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := s.RecordRepository.List(ctx, filter, companyID)
	if err != nil {
		return request.ListRecordsResponse{}, fmt.Errorf("failed to list requests: %w", err)
	}

	responses := make([]request.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapRecordToResponse(record))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return request.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Records:    responses,
	}, nil
}

// Approve implements request.RecordService.
func (s *RecordServiceImpl) Approve(ctx context.Context, id string) (request.RecordResponse, error) {
	return s.decide(ctx, id, request.StatusApproved, nil)
}

// Reject implements request.RecordService.
func (s *RecordServiceImpl) Reject(ctx context.Context, req request.RejectRequest) (request.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RecordResponse{}, err
	}
	return s.decide(ctx, req.ID, request.StatusRejected, &req.Reason)
}

func (s *RecordServiceImpl) decide(ctx context.Context, id string, status request.Status, rejectionReason *string) (request.RecordResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return request.RecordResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return request.RecordResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return request.RecordResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	record, err := s.RecordRepository.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, request.ErrRequestNotFound) {
			return request.RecordResponse{}, request.ErrRequestNotFound
		}
		return request.RecordResponse{}, fmt.Errorf("failed to get request: %w", err)
	}

	if record.Status != request.StatusPending {
		return request.RecordResponse{}, request.ErrRequestAlreadyProcessed
	}

	now := s.now().UTC()
	record.Status = status
	record.DecidedBy = &userID
	record.DecidedAt = &now
	record.RejectionReason = rejectionReason

	if err := s.RecordRepository.UpdateDecision(ctx, record); err != nil {
		return request.RecordResponse{}, fmt.Errorf("failed to update request: %w", err)
	}

	return mapRecordToResponse(record), nil
}

// mapRecordToResponse converts a Record entity to RecordResponse
func mapRecordToResponse(record request.Record) request.RecordResponse {
	var decidedAt *string
	if record.DecidedAt != nil {
		formatted := record.DecidedAt.Format("2006-01-02 15:04:05")
		decidedAt = &formatted
	}

	return request.RecordResponse{
		ID:              record.ID,
		EmployeeID:      record.EmployeeID,
		EmployeeName:    record.EmployeeName,
		Type:            string(record.Type),
		Status:          string(record.Status),
		StartDate:       record.StartDate.Format("2006-01-02"),
		EndDate:         record.EndDate.Format("2006-01-02"),
		Reason:          record.Reason,
		DecidedBy:       record.DecidedBy,
		DecidedAt:       decidedAt,
		RejectionReason: record.RejectionReason,
		CreatedAt:       record.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
