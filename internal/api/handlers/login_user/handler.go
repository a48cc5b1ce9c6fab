package login_user

import (
	"errors"
	"net/http"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
	userService "github.com/booknjoy/turf-booking-service/internal/service/users"
	"github.com/booknjoy/turf-booking-service/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/users/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, userService.ErrInvalidInput) {
			h.logger.Warn("POST /users/login - Invalid input: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /users/login - Failed to login: email=%s, error=%v", req.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /users/login - Login successful: email=%s, role=%s", result.Email, result.Role)
	handlers.RespondJSON(w, http.StatusOK, result)
}
