package create_booking

import (
	"context"
	"time"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error)
}

// TurfRepository интерфейс репозитория площадок
type TurfRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
}

// PromoEngine интерфейс расчёта скидки по промокоду
type PromoEngine interface {
	Apply(code string) (discount float64, recognized bool)
}

// Notifier интерфейс отправки подтверждения бронирования
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, booking *domain.Booking, turfName string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
