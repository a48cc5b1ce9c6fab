package users

import (
	"context"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
