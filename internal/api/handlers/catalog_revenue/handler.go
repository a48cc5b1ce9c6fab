package catalog_revenue

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

// Handle GET /api/v1/turfs/analytics/revenue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CatalogRevenue(r.Context())
	if err != nil {
		h.logger.Error("GET /turfs/analytics/revenue - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /turfs/analytics/revenue - Report built successfully: turfs=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
