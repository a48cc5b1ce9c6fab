package get_turf

import (
	"context"

	"github.com/booknjoy/turf-booking-service/internal/service/turfs/models"
)

type TurfService interface {
	GetByID(ctx context.Context, id int64) (*models.TurfResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
