package bookings

import (
	"context"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований (read-side)
type BookingRepository interface {
	GetByUserEmail(ctx context.Context, email string) ([]*domain.BookingWithTurf, error)
	GetByOwnerEmail(ctx context.Context, ownerEmail string) ([]*domain.BookingWithTurf, error)
	GetAll(ctx context.Context) ([]*domain.BookingWithTurf, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
