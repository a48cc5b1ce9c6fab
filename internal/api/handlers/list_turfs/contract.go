package list_turfs

import (
	"context"

	"github.com/booknjoy/turf-booking-service/internal/service/turfs/models"
)

type TurfService interface {
	List(ctx context.Context) (*models.TurfListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
