package booking_analytics

import (
	"net/http"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
	revenueDashboard "github.com/booknjoy/turf-booking-service/internal/usecase/revenue_dashboard"
)

type Handler struct {
	useCase RevenueDashboardUseCase
	logger  Logger
}

func NewHandler(useCase RevenueDashboardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/analytics
// Опциональный query параметр ownerEmail сужает метрики до площадок владельца
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerEmail := r.URL.Query().Get("ownerEmail")

	result, err := h.useCase.Execute(r.Context(), &revenueDashboard.Request{OwnerEmail: ownerEmail})
	if err != nil {
		h.logger.Error("GET /bookings/analytics - Failed to build metrics: owner=%s, error=%v", ownerEmail, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/analytics - Metrics built successfully: owner=%s, bookings=%d",
		ownerEmail, result.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
