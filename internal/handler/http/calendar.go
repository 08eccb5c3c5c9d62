package http

import (
	"net/http"
	"time"

	"github.com/worklens-hq/worklens-backend-go/internal/domain/attendance"
	"github.com/worklens-hq/worklens-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	GetMyCalendar(w http.ResponseWriter, r *http.Request)
	GetEmployeeCalendar(w http.ResponseWriter, r *http.Request)
	GetDailyOverview(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService attendance.CalendarService
}

func NewCalendarHandler(calendarService attendance.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

// GetMyCalendar implements CalendarHandler.
func (h *calendarHandlerImpl) GetMyCalendar(w http.ResponseWriter, r *http.Request) {
	filter := attendance.CalendarFilter{
		Month: r.URL.Query().Get("month"),
		Week:  r.URL.Query().Get("week"),
	}

	result, err := h.calendarService.GetMyCalendar(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeeCalendar implements CalendarHandler.
func (h *calendarHandlerImpl) GetEmployeeCalendar(w http.ResponseWriter, r *http.Request) {
	filter := attendance.CalendarFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Month:      r.URL.Query().Get("month"),
		Week:       r.URL.Query().Get("week"),
	}

	if filter.EmployeeID == "" {
		response.BadRequest(w, "Query parameter employee_id is required", nil)
		return
	}

	result, err := h.calendarService.GetEmployeeCalendar(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDailyOverview implements CalendarHandler.
func (h *calendarHandlerImpl) GetDailyOverview(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		// Default in UTC to match how the service resolves "today".
		date = time.Now().UTC().Format("2006-01-02")
	}

	result, err := h.calendarService.GetDailyOverview(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
