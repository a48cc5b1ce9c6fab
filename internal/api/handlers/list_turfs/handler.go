package list_turfs

import (
	"net/http"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
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

// Handle GET /api/v1/turfs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /turfs - Failed to list turfs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /turfs - Turfs retrieved successfully: count=%d", len(result.Turfs))
	handlers.RespondJSON(w, http.StatusOK, result.Turfs)
}
