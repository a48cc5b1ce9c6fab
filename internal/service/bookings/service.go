package bookings

import (
	"context"
	"fmt"
	"strings"

	"github.com/booknjoy/turf-booking-service/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
// Все операции read-only, соединение с площадкой делает репозиторий
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetUserBookings получает историю бронирований клиента
func (s *Service) GetUserBookings(ctx context.Context, email string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", email)

	if strings.TrimSpace(email) == "" {
		s.logger.Warn("GetUserBookings: empty user email")
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByUserEmail(ctx, email)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), email)
	return models.FromDomainBookingList(bookings), nil
}

// GetOwnerBookings получает бронирования всех площадок владельца
// Скоупинг по владельцу делается в репозитории через join на turfs.owner_email
func (s *Service) GetOwnerBookings(ctx context.Context, ownerEmail string) (*models.BookingListResponse, error) {
	s.logger.Info("GetOwnerBookings: fetching bookings for owner=%s", ownerEmail)

	if strings.TrimSpace(ownerEmail) == "" {
		s.logger.Warn("GetOwnerBookings: empty owner email")
		return nil, fmt.Errorf("%w: owner email is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByOwnerEmail(ctx, ownerEmail)
	if err != nil {
		s.logger.Error("GetOwnerBookings: repository error for owner=%s: %v", ownerEmail, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerBookings: successfully fetched %d bookings for owner=%s", len(bookings), ownerEmail)
	return models.FromDomainBookingList(bookings), nil
}

// GetAllBookings получает все бронирования
// Используется админскими представлениями и аналитикой
func (s *Service) GetAllBookings(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("GetAllBookings: fetching all bookings")

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllBookings: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}
