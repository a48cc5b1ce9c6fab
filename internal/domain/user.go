package domain

import (
	"errors"
	"time"
)

// ErrUnknownRole returned for a role outside the closed enumeration
var ErrUnknownRole = errors.New("unknown role")

// Role represents the authorization scope of a user
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

// dashboardRoutes единая таблица диспетчеризации ролей вместо цепочки if-ов
var dashboardRoutes = map[Role]string{
	RoleUser:  "/dashboard",
	RoleOwner: "/owner-dashboard",
	RoleAdmin: "/admin-dashboard",
}

// ParseRole validates a raw role against the closed enumeration
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if _, ok := dashboardRoutes[role]; !ok {
		return "", ErrUnknownRole
	}
	return role, nil
}

// DashboardRoute returns the dashboard route for the role
func (r Role) DashboardRoute() string {
	return dashboardRoutes[r]
}

// User represents an identity-provider backed account keyed by email
type User struct {
	ID      int64
	Name    string
	Email   string
	Picture *string
	Role    Role
	// AuthSubject subject id внешнего identity-провайдера
	AuthSubject string

	CreatedAt time.Time
	UpdatedAt time.Time
}
