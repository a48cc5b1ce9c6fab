package create_turf

import (
	"errors"
	"net/http"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
	"github.com/booknjoy/turf-booking-service/internal/api/middleware"
	turfService "github.com/booknjoy/turf-booking-service/internal/service/turfs"
	"github.com/booknjoy/turf-booking-service/internal/service/turfs/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/turfs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveTurfRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /turfs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.RequesterEmail = middleware.UserEmail(r)

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, turfService.ErrInvalidInput) {
			h.logger.Warn("POST /turfs - Invalid input: user=%s, error=%v", req.RequesterEmail, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /turfs - Failed to create turf: user=%s, error=%v", req.RequesterEmail, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /turfs - Turf created successfully: turf_id=%d, user=%s", result.ID, req.RequesterEmail)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
