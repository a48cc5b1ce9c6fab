package get_all_bookings

import (
	"context"

	"github.com/booknjoy/turf-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetAllBookings(ctx context.Context) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
