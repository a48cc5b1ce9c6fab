package get_owner_turfs

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
	turfService "github.com/booknjoy/turf-booking-service/internal/service/turfs"
)

const (
	msgInvalidEmail = "некорректный email владельца"
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

// Handle GET /api/v1/owners/{email}/turfs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем email владельца из URL
	vars := mux.Vars(r)
	ownerEmail := vars["email"]

	result, err := h.service.ListByOwner(r.Context(), ownerEmail)
	if err != nil {
		if errors.Is(err, turfService.ErrInvalidInput) {
			h.logger.Warn("GET /owners/{email}/turfs - Invalid email: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)
			return
		}
		h.logger.Error("GET /owners/{email}/turfs - Failed to list turfs: owner=%s, error=%v", ownerEmail, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /owners/{email}/turfs - Turfs retrieved successfully: owner=%s, count=%d",
		ownerEmail, len(result.Turfs))
	handlers.RespondJSON(w, http.StatusOK, result.Turfs)
}
