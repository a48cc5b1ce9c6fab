package models

import (
	"time"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

// Request модели

// LoginRequest запрос на вход через внешнего identity-провайдера
// Role трактуется как подсказка и учитывается только при первом входе
type LoginRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Picture     *string `json:"picture,omitempty"`
	AuthSubject string  `json:"authSubject"`
	Role        string  `json:"role,omitempty"`
}

// Response модели

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Picture        *string   `json:"picture,omitempty"`
	Role           string    `json:"role"`
	DashboardRoute string    `json:"dashboardRoute"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Picture:        u.Picture,
		Role:           string(u.Role),
		DashboardRoute: u.Role.DashboardRoute(),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
