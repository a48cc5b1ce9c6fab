package turfs

import (
	"context"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

// TurfRepository интерфейс репозитория площадок
type TurfRepository interface {
	Create(ctx context.Context, turf *domain.Turf) (*domain.Turf, error)
	GetByID(ctx context.Context, id int64) (*domain.Turf, error)
	GetAll(ctx context.Context) ([]*domain.Turf, error)
	GetByOwnerEmail(ctx context.Context, ownerEmail string) ([]*domain.Turf, error)
	Update(ctx context.Context, turf *domain.Turf) (*domain.Turf, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository интерфейс репозитория пользователей
// Нужен для проверки админских прав при изменении чужих площадок
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
