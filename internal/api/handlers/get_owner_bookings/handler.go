package get_owner_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
	bookingService "github.com/booknjoy/turf-booking-service/internal/service/bookings"
)

const (
	msgInvalidEmail = "некорректный email владельца"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/{email}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем email владельца из URL
	vars := mux.Vars(r)
	ownerEmail := vars["email"]

	// Получаем бронирования всех площадок владельца
	result, err := h.service.GetOwnerBookings(r.Context(), ownerEmail)
	if err != nil {
		if errors.Is(err, bookingService.ErrInvalidInput) {
			h.logger.Warn("GET /owners/{email}/bookings - Invalid email: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)
			return
		}
		h.logger.Error("GET /owners/{email}/bookings - Failed to get bookings: owner=%s, error=%v", ownerEmail, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /owners/{email}/bookings - Bookings retrieved successfully: owner=%s, count=%d",
		ownerEmail, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
