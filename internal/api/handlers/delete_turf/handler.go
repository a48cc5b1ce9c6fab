package delete_turf

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
	"github.com/booknjoy/turf-booking-service/internal/api/middleware"
	turfService "github.com/booknjoy/turf-booking-service/internal/service/turfs"
)

const (
	msgInvalidTurfID = "некорректный ID площадки"
	msgTurfNotFound  = "площадка не найдена"
	msgAccessDenied  = "доступ запрещен"
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

// Handle DELETE /api/v1/turfs/{turfId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем turfId из URL
	vars := mux.Vars(r)
	turfID, err := strconv.ParseInt(vars["turfId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /turfs/{turfId} - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	requesterEmail := middleware.UserEmail(r)

	if err := h.service.Delete(r.Context(), turfID, requesterEmail); err != nil {
		switch {
		case errors.Is(err, turfService.ErrTurfNotFound):
			h.logger.Warn("DELETE /turfs/{turfId} - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, turfService.ErrAccessDenied):
			h.logger.Warn("DELETE /turfs/{turfId} - Access denied: turf_id=%d, user=%s", turfID, requesterEmail)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		default:
			h.logger.Error("DELETE /turfs/{turfId} - Failed to delete turf: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /turfs/{turfId} - Turf deleted successfully: turf_id=%d, user=%s", turfID, requesterEmail)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
