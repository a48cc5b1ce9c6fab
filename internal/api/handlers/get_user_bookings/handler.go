package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
	bookingService "github.com/booknjoy/turf-booking-service/internal/service/bookings"
)

const (
	msgInvalidEmail = "некорректный email пользователя"
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

// Handle GET /api/v1/users/{email}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем email из URL
	vars := mux.Vars(r)
	email := vars["email"]

	// Получаем бронирования пользователя
	result, err := h.service.GetUserBookings(r.Context(), email)
	if err != nil {
		if errors.Is(err, bookingService.ErrInvalidInput) {
			h.logger.Warn("GET /users/{email}/bookings - Invalid email: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)
			return
		}
		h.logger.Error("GET /users/{email}/bookings - Failed to get bookings: user=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{email}/bookings - Bookings retrieved successfully: user=%s, count=%d",
		email, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
