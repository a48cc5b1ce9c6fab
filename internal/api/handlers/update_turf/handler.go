package update_turf

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
	"github.com/booknjoy/turf-booking-service/internal/api/middleware"
	turfService "github.com/booknjoy/turf-booking-service/internal/service/turfs"
	"github.com/booknjoy/turf-booking-service/internal/service/turfs/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTurfID      = "некорректный ID площадки"
	msgTurfNotFound       = "площадка не найдена"
	msgAccessDenied       = "доступ запрещен"
)

type Handler struct {
	service TurfService
	logger  Logger
}

func NewHandler(service TurfService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/turfs/{turfId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем turfId из URL
	vars := mux.Vars(r)
	turfID, err := strconv.ParseInt(vars["turfId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /turfs/{turfId} - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	var req models.SaveTurfRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /turfs/{turfId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.RequesterEmail = middleware.UserEmail(r)

	result, err := h.service.Update(r.Context(), turfID, &req)
	if err != nil {
		switch {
		case errors.Is(err, turfService.ErrTurfNotFound):
			h.logger.Warn("PUT /turfs/{turfId} - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, turfService.ErrAccessDenied):
			h.logger.Warn("PUT /turfs/{turfId} - Access denied: turf_id=%d, user=%s", turfID, req.RequesterEmail)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, turfService.ErrInvalidInput):
			h.logger.Warn("PUT /turfs/{turfId} - Invalid input: turf_id=%d, error=%v", turfID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /turfs/{turfId} - Failed to update turf: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /turfs/{turfId} - Turf updated successfully: turf_id=%d, user=%s", turfID, req.RequesterEmail)
	handlers.RespondJSON(w, http.StatusOK, result)
}
