package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/schedule"
	"github.com/worklens-hq/worklens-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetMyWeeklyOff(w http.ResponseWriter, r *http.Request)
	GetWeeklyOff(w http.ResponseWriter, r *http.Request)
	UpdateWeeklyOff(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	weeklyOffService schedule.WeeklyOffService
}

func NewScheduleHandler(weeklyOffService schedule.WeeklyOffService) ScheduleHandler {
	return &scheduleHandlerImpl{
		weeklyOffService: weeklyOffService,
	}
}

// GetMyWeeklyOff implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetMyWeeklyOff(w http.ResponseWriter, r *http.Request) {
	result, err := h.weeklyOffService.GetMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWeeklyOff implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetWeeklyOff(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.weeklyOffService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateWeeklyOff implements ScheduleHandler.
func (h *scheduleHandlerImpl) UpdateWeeklyOff(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpdateWeeklyOffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateWeeklyOff decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.weeklyOffService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekly off updated", result)
}
