package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
)

// UserEmailHeader заголовок, которым фронтенд передает идентификатор пользователя
// Проверка подлинности токена выполняется на стороне identity-провайдера
const UserEmailHeader = "X-User-Email"

const (
	msgMissingUserEmail = "отсутствует заголовок X-User-Email"
	msgAccessDenied     = "доступ запрещен"
)

type contextKey string

const userEmailKey contextKey = "userEmail"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UserEmail возвращает email вызывающего, положенный Auth middleware
func UserEmail(r *http.Request) string {
	if email, ok := r.Context().Value(userEmailKey).(string); ok {
		return email
	}
	return ""
}

// Auth требует заголовок X-User-Email и кладет его значение в контекст запроса
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := strings.TrimSpace(r.Header.Get(UserEmailHeader))
			if email == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, UserEmailHeader)
				handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserEmail)
				return
			}

			ctx := context.WithValue(r.Context(), userEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
