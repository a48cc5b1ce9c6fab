package get_owner_turfs

import (
	"context"

	"github.com/booknjoy/turf-booking-service/internal/service/turfs/models"
)

type TurfService interface {
	ListByOwner(ctx context.Context, ownerEmail string) (*models.TurfListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
