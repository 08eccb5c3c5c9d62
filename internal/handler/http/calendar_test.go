package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/attendance"
)

type fakeCalendarService struct {
	overviewDate string
}

func (s *fakeCalendarService) GetMyCalendar(ctx context.Context, filter attendance.CalendarFilter) (attendance.CalendarResponse, error) {
	return attendance.CalendarResponse{}, nil
}

func (s *fakeCalendarService) GetEmployeeCalendar(ctx context.Context, filter attendance.CalendarFilter) (attendance.CalendarResponse, error) {
	return attendance.CalendarResponse{}, nil
}

func (s *fakeCalendarService) GetDailyOverview(ctx context.Context, date string) (attendance.DailyOverviewResponse, error) {
	s.overviewDate = date
	return attendance.DailyOverviewResponse{}, nil
}

func TestGetDailyOverview_DefaultsToTodayUTC(t *testing.T) {
	svc := &fakeCalendarService{}
	handler := NewCalendarHandler(svc)

	before := time.Now().UTC().Format("2006-01-02")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/daily", nil)
	handler.GetDailyOverview(rec, req)
	after := time.Now().UTC().Format("2006-01-02")

	require.Equal(t, http.StatusOK, rec.Code)
	// The two reads bracket the handler call; they only differ right at a
	// UTC midnight boundary.
	assert.Contains(t, []string{before, after}, svc.overviewDate)
}

func TestGetDailyOverview_PassesExplicitDate(t *testing.T) {
	svc := &fakeCalendarService{}
	handler := NewCalendarHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/daily?date=2025-06-13", nil)
	handler.GetDailyOverview(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-06-13", svc.overviewDate)
}
