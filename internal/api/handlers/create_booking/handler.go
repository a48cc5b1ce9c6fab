package create_booking

import (
	"errors"
	"net/http"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
	"github.com/booknjoy/turf-booking-service/internal/api/middleware"
	createBooking "github.com/booknjoy/turf-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgTurfNotFound       = "площадка не найдена"
	msgPriceMismatch      = "цена изменилась, обновите страницу и попробуйте снова"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/demo-payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DemoPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/demo-payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userEmail := middleware.UserEmail(r)

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(userEmail)
	if err != nil {
		h.logger.Warn("POST /bookings/demo-payment - Failed to parse booking date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrTurfNotFound):
			h.logger.Warn("POST /bookings/demo-payment - Turf not found: turf_id=%d, user=%s", req.TurfID, userEmail)
			handlers.RespondNotFound(w, msgTurfNotFound)

		case errors.Is(err, createBooking.ErrPriceMismatch):
			h.logger.Warn("POST /bookings/demo-payment - Price mismatch: turf_id=%d, user=%s", req.TurfID, userEmail)
			handlers.RespondError(w, http.StatusConflict, msgPriceMismatch)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/demo-payment - Invalid input: user=%s, error=%v", userEmail, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/demo-payment - Failed to create booking: turf_id=%d, user=%s, error=%v",
				req.TurfID, userEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings/demo-payment - Booking created successfully: booking_id=%d, user=%s, turf_id=%d",
		result.ID, userEmail, req.TurfID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
