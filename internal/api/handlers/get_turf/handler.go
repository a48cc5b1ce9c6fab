package get_turf

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
	turfService "github.com/booknjoy/turf-booking-service/internal/service/turfs"
)

const (
	msgInvalidTurfID = "некорректный ID площадки"
	msgTurfNotFound  = "площадка не найдена"
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

// Handle GET /api/v1/turfs/{turfId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем turfId из URL
	vars := mux.Vars(r)
	turfID, err := strconv.ParseInt(vars["turfId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /turfs/{turfId} - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	result, err := h.service.GetByID(r.Context(), turfID)
	if err != nil {
		if errors.Is(err, turfService.ErrTurfNotFound) {
			h.logger.Warn("GET /turfs/{turfId} - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgTurfNotFound)
			return
		}
		h.logger.Error("GET /turfs/{turfId} - Failed to get turf: turf_id=%d, error=%v", turfID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /turfs/{turfId} - Turf retrieved successfully: turf_id=%d", turfID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
