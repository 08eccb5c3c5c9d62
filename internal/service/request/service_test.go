package request

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklens-hq/worklens-backend-go/internal/domain/request"
)

const (
	testCompanyID  = "c0ffee00-0000-0000-0000-000000000001"
	testEmployeeID = "e0000000-0000-0000-0000-000000000001"
	testManagerID  = "a0000000-0000-0000-0000-000000000002"
)

func managerContext(t *testing.T) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":     testManagerID,
		"company_id":  testCompanyID,
		"employee_id": testEmployeeID,
		"role":        "manager",
		"type":        "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeRecordRepo struct {
	records []request.Record
}

func (f *fakeRecordRepo) Create(_ context.Context, record request.Record) (request.Record, error) {
	record.CreatedAt = time.Now()
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id string, companyID string) (request.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id && rec.CompanyID == companyID {
			return rec, nil
		}
	}
	return request.Record{}, request.ErrRequestNotFound
}

func (f *fakeRecordRepo) UpdateDecision(_ context.Context, record request.Record) error {
	for i, rec := range f.records {
		if rec.ID == record.ID {
			f.records[i] = record
			return nil
		}
	}
	return request.ErrRequestNotFound
}

func (f *fakeRecordRepo) List(_ context.Context, filter request.ListFilter, companyID string) ([]request.Record, int64, error) {
	var out []request.Record
	for _, rec := range f.records {
		if rec.CompanyID != companyID {
			continue
		}
		if filter.Status != "" && string(rec.Status) != filter.Status {
			continue
		}
		if filter.Type != "" && string(rec.Type) != filter.Type {
			continue
		}
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRecordRepo) ListByEmployee(_ context.Context, employeeID string, companyID string) ([]request.Record, error) {
	var out []request.Record
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.CompanyID == companyID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListOverlappingRange(_ context.Context, _ string, _, _ time.Time, _ string) ([]request.Record, error) {
	return nil, nil
}

func (f *fakeRecordRepo) ListOverlappingDateForCompany(_ context.Context, _ string, _ time.Time) ([]request.Record, error) {
	return nil, nil
}

func newTestRecordService(repo *fakeRecordRepo) *RecordServiceImpl {
	return &RecordServiceImpl{
		RecordRepository: repo,
		now:              time.Now,
	}
}

func TestSubmit(t *testing.T) {
	repo := &fakeRecordRepo{}
	svc := newTestRecordService(repo)
	reason := "Forgot to check in"

	resp, err := svc.Submit(managerContext(t), request.SubmitRequest{
		Type:      "regularization",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-10",
		Reason:    &reason,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, testEmployeeID, resp.EmployeeID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2025-06-10", resp.StartDate)
	assert.Equal(t, "2025-06-10", resp.EndDate)
	require.Len(t, repo.records, 1)
	assert.Equal(t, testCompanyID, repo.records[0].CompanyID)
}

func TestSubmit_Validation(t *testing.T) {
	svc := newTestRecordService(&fakeRecordRepo{})
	ctx := managerContext(t)

	tests := []struct {
		name string
		req  request.SubmitRequest
	}{
		{"unknown type", request.SubmitRequest{Type: "vacation", StartDate: "2025-06-10", EndDate: "2025-06-10"}},
		{"bad start date", request.SubmitRequest{Type: "leave", StartDate: "10-06-2025", EndDate: "2025-06-10"}},
		{"end before start", request.SubmitRequest{Type: "leave", StartDate: "2025-06-12", EndDate: "2025-06-10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestApprove(t *testing.T) {
	repo := &fakeRecordRepo{records: []request.Record{{
		ID:         "r1",
		CompanyID:  testCompanyID,
		EmployeeID: testEmployeeID,
		Type:       request.TypeLeave,
		Status:     request.StatusPending,
		StartDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
	}}}
	svc := newTestRecordService(repo)

	resp, err := svc.Approve(managerContext(t), "r1")
	require.NoError(t, err)

	assert.Equal(t, "approved", resp.Status)
	require.NotNil(t, resp.DecidedBy)
	assert.Equal(t, testManagerID, *resp.DecidedBy)
	assert.NotNil(t, resp.DecidedAt)

	// A decision is final
	_, err = svc.Approve(managerContext(t), "r1")
	assert.ErrorIs(t, err, request.ErrRequestAlreadyProcessed)
}

func TestReject(t *testing.T) {
	repo := &fakeRecordRepo{records: []request.Record{{
		ID:         "r1",
		CompanyID:  testCompanyID,
		EmployeeID: testEmployeeID,
		Type:       request.TypeWFH,
		Status:     request.StatusPending,
		StartDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}}}
	svc := newTestRecordService(repo)

	resp, err := svc.Reject(managerContext(t), request.RejectRequest{
		ID:     "r1",
		Reason: "Not enough coverage that week",
	})
	require.NoError(t, err)

	assert.Equal(t, "rejected", resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "Not enough coverage that week", *resp.RejectionReason)
}

func TestReject_RequiresReason(t *testing.T) {
	svc := newTestRecordService(&fakeRecordRepo{})

	_, err := svc.Reject(managerContext(t), request.RejectRequest{ID: "r1"})
	assert.Error(t, err)
}

func TestDecide_UnknownRequest(t *testing.T) {
	svc := newTestRecordService(&fakeRecordRepo{})

	_, err := svc.Approve(managerContext(t), "missing")
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}

func TestList_Pagination(t *testing.T) {
	repo := &fakeRecordRepo{}
	for i := 0; i < 3; i++ {
		repo.records = append(repo.records, request.Record{
			ID:         string(rune('a' + i)),
			CompanyID:  testCompanyID,
			EmployeeID: testEmployeeID,
			Type:       request.TypeLeave,
			Status:     request.StatusPending,
			StartDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		})
	}
	svc := newTestRecordService(repo)

	resp, err := svc.List(managerContext(t), request.ListFilter{})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Len(t, resp.Records, 3)
}
