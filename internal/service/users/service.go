package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/booknjoy/turf-booking-service/internal/domain"
	userRepo "github.com/booknjoy/turf-booking-service/internal/infra/storage/user"
	"github.com/booknjoy/turf-booking-service/internal/service/users/models"
)

// Service сервис для работы с пользователями
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login регистрирует пользователя при первом входе и обновляет профиль при повторных
// Роль из запроса применяется только при создании записи; при повторном входе
// сохранённая роль не перезаписывается
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, error) {
	s.logger.Info("Login: processing login for email=%s", req.Email)

	if err := validateLoginRequest(req); err != nil {
		s.logger.Warn("Login: validation failed: %v", err)
		return nil, err
	}

	role := domain.DefaultRole
	if req.Role != "" {
		parsed, err := domain.ParseRole(req.Role)
		if err != nil {
			s.logger.Warn("Login: unknown role hint %q for email=%s", req.Role, req.Email)
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
		}
		role = parsed
	}

	user := &domain.User{
		Name:        req.Name,
		Email:       req.Email,
		Picture:     req.Picture,
		Role:        role,
		AuthSubject: req.AuthSubject,
	}

	stored, err := s.userRepo.Upsert(ctx, user)
	if err != nil {
		s.logger.Error("Login: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: successful login for email=%s role=%s", stored.Email, stored.Role)
	return models.FromDomainUser(stored), nil
}

// GetByEmail получает профиль пользователя по email
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.UserResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByEmail: user email=%s not found", email)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByEmail: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetByEmail - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

func validateLoginRequest(req *models.LoginRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.AuthSubject) == "" {
		return fmt.Errorf("%w: authSubject is required", ErrInvalidInput)
	}
	return nil
}
