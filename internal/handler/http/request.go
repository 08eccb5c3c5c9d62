package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/worklens-hq/worklens-backend-go/internal/domain/request"
	"github.com/worklens-hq/worklens-backend-go/internal/handler/http/response"
)

type RequestHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type requestHandlerImpl struct {
	recordService request.RecordService
}

func NewRequestHandler(recordService request.RecordService) RequestHandler {
	return &requestHandlerImpl{
		recordService: recordService,
	}
}

// Submit implements RequestHandler.
func (h *requestHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recordService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Request submitted", result)
}

// ListMine implements RequestHandler.
func (h *requestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.recordService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements RequestHandler.
func (h *requestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := request.ListFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Type:       r.URL.Query().Get("type"),
		Status:     r.URL.Query().Get("status"),
	}

	if p := r.URL.Query().Get("page"); p != "" {
		if page, err := strconv.Atoi(p); err == nil {
			filter.Page = page
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil {
			filter.Limit = limit
		}
	}

	result, err := h.recordService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Approve implements RequestHandler.
func (h *requestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.recordService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request approved", result)
}

// Reject implements RequestHandler.
func (h *requestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req request.RejectRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.recordService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request rejected", result)
}
