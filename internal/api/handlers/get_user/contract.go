package get_user

import (
	"context"

	"github.com/booknjoy/turf-booking-service/internal/service/users/models"
)

type UserService interface {
	GetByEmail(ctx context.Context, email string) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
