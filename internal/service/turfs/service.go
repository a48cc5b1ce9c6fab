package turfs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/booknjoy/turf-booking-service/internal/domain"
	turfRepo "github.com/booknjoy/turf-booking-service/internal/infra/storage/turf"
	userRepo "github.com/booknjoy/turf-booking-service/internal/infra/storage/user"
	"github.com/booknjoy/turf-booking-service/internal/service/turfs/models"
)

// Service сервис для работы с каталогом площадок
type Service struct {
	turfRepo TurfRepository
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(turfRepo TurfRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		turfRepo: turfRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create создает новую площадку
func (s *Service) Create(ctx context.Context, req *models.SaveTurfRequest) (*models.TurfResponse, error) {
	s.logger.Info("Create: creating turf name=%s owner=%s by user=%s", req.Name, req.OwnerEmail, req.RequesterEmail)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.turfRepo.Create(ctx, req.ToDomainTurf())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created turf id=%d", created.ID)
	return models.FromDomainTurf(created), nil
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TurfResponse, error) {
	s.logger.Info("GetByID: fetching turf id=%d", id)

	turf, err := s.turfRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			s.logger.Warn("GetByID: turf id=%d not found", id)
			return nil, ErrTurfNotFound
		}
		s.logger.Error("GetByID: repository error for turf id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTurf(turf), nil
}

// List получает все площадки
func (s *Service) List(ctx context.Context) (*models.TurfListResponse, error) {
	turfs, err := s.turfRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d turfs", len(turfs))
	return models.FromDomainTurfList(turfs), nil
}

// ListByOwner получает площадки владельца
func (s *Service) ListByOwner(ctx context.Context, ownerEmail string) (*models.TurfListResponse, error) {
	if strings.TrimSpace(ownerEmail) == "" {
		return nil, fmt.Errorf("%w: owner email is required", ErrInvalidInput)
	}

	turfs, err := s.turfRepo.GetByOwnerEmail(ctx, ownerEmail)
	if err != nil {
		s.logger.Error("ListByOwner: repository error for owner=%s: %v", ownerEmail, err)
		return nil, fmt.Errorf("%w: ListByOwner - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByOwner: successfully fetched %d turfs for owner=%s", len(turfs), ownerEmail)
	return models.FromDomainTurfList(turfs), nil
}

// Update обновляет площадку
// Доступно владельцу площадки и администраторам
func (s *Service) Update(ctx context.Context, id int64, req *models.SaveTurfRequest) (*models.TurfResponse, error) {
	s.logger.Info("Update: updating turf id=%d by user=%s", id, req.RequesterEmail)

	if err := validateSaveRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	existing, err := s.turfRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			s.logger.Warn("Update: turf id=%d not found", id)
			return nil, ErrTurfNotFound
		}
		s.logger.Error("Update: repository error for turf id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwnerAccess(ctx, existing, req.RequesterEmail); err != nil {
		s.logger.Warn("Update: access denied for user=%s to turf id=%d", req.RequesterEmail, id)
		return nil, err
	}

	turf := req.ToDomainTurf()
	turf.ID = id
	turf.CreatedBy = existing.CreatedBy

	updated, err := s.turfRepo.Update(ctx, turf)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			return nil, ErrTurfNotFound
		}
		s.logger.Error("Update: repository error for turf id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated turf id=%d", id)
	return models.FromDomainTurf(updated), nil
}

// Delete удаляет площадку
// Доступно владельцу площадки и администраторам
func (s *Service) Delete(ctx context.Context, id int64, requesterEmail string) error {
	s.logger.Info("Delete: deleting turf id=%d by user=%s", id, requesterEmail)

	existing, err := s.turfRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			s.logger.Warn("Delete: turf id=%d not found", id)
			return ErrTurfNotFound
		}
		s.logger.Error("Delete: repository error for turf id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.checkOwnerAccess(ctx, existing, requesterEmail); err != nil {
		s.logger.Warn("Delete: access denied for user=%s to turf id=%d", requesterEmail, id)
		return err
	}

	if err := s.turfRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			return ErrTurfNotFound
		}
		s.logger.Error("Delete: repository error for turf id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted turf id=%d", id)
	return nil
}

// CatalogRevenue считает каталожный отчет по выручке
// Для каждой площадки суммируются четыре слота прайс-листа; это проекция
// каталога, а не агрегат по бронированиям — не путать с дашбордом
func (s *Service) CatalogRevenue(ctx context.Context) ([]models.TurfRevenueResponse, error) {
	turfs, err := s.turfRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("CatalogRevenue: repository error: %v", err)
		return nil, fmt.Errorf("%w: CatalogRevenue - repository error: %v", ErrInternal, err)
	}

	report := make([]models.TurfRevenueResponse, 0, len(turfs))
	for _, turf := range turfs {
		costRevenue := turf.CostPrice.Total()
		customerRevenue := turf.CustomerPrice.Total()

		report = append(report, models.TurfRevenueResponse{
			Name:            turf.Name,
			CostRevenue:     costRevenue,
			CustomerRevenue: customerRevenue,
			Profit:          customerRevenue - costRevenue,
		})
	}

	s.logger.Info("CatalogRevenue: report built for %d turfs", len(report))
	return report, nil
}

// Вспомогательные методы

// checkOwnerAccess проверяет, что вызывающий — владелец площадки или админ
func (s *Service) checkOwnerAccess(ctx context.Context, turf *domain.Turf, requesterEmail string) error {
	if requesterEmail == turf.OwnerEmail {
		return nil
	}

	requester, err := s.userRepo.GetByEmail(ctx, requesterEmail)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: checkOwnerAccess - failed to get user: %v", ErrInternal, err)
	}

	if requester.Role == domain.RoleAdmin {
		return nil
	}

	return ErrAccessDenied
}

func validateSaveRequest(req *models.SaveTurfRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxTurfNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SportsCategory) == "" {
		return fmt.Errorf("%w: sportsCategory is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.OwnerEmail) == "" {
		return fmt.Errorf("%w: ownerEmail is required", ErrInvalidInput)
	}

	for _, prices := range []models.SlotPricesPayload{req.CostPrice, req.CustomerPrice} {
		if prices.Morning < 0 || prices.Afternoon < 0 || prices.Evening < 0 || prices.Night < 0 {
			return fmt.Errorf("%w: slot prices must be non-negative", ErrInvalidInput)
		}
	}

	return nil
}
