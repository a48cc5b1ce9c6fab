package revenue_dashboard

import (
	"context"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetAll(ctx context.Context) ([]*domain.BookingWithTurf, error)
	GetByOwnerEmail(ctx context.Context, ownerEmail string) ([]*domain.BookingWithTurf, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
