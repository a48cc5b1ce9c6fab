package middleware

import (
	"net/http"
	"strings"

	"github.com/booknjoy/turf-booking-service/internal/api/handlers"
)

// AdminAuth пропускает только пользователей из списка администраторов
// Сравнение email регистронезависимое; применяется поверх Auth
func AdminAuth(adminEmails []string, logger Logger) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		allowed[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := UserEmail(r)
			if _, ok := allowed[strings.ToLower(email)]; !ok {
				logger.Warn("%s %s - Admin access denied for user=%s", r.Method, r.URL.Path, email)
				handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
