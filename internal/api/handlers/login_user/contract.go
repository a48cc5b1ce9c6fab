package login_user

import (
	"context"

	"github.com/booknjoy/turf-booking-service/internal/service/users/models"
)

type UserService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
