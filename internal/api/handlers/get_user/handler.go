package get_user

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
	userService "github.com/booknjoy/turf-booking-service/internal/service/users"
)

const (
	msgInvalidEmail = "некорректный email пользователя"
	msgUserNotFound = "пользователь не найден"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{email}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем email из URL
	vars := mux.Vars(r)
	email := vars["email"]

	result, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, userService.ErrUserNotFound):
			h.logger.Warn("GET /users/{email} - User not found: email=%s", email)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, userService.ErrInvalidInput):
			h.logger.Warn("GET /users/{email} - Invalid email: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		default:
			h.logger.Error("GET /users/{email} - Failed to get user: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{email} - User retrieved successfully: email=%s", email)
	handlers.RespondJSON(w, http.StatusOK, result)
}
