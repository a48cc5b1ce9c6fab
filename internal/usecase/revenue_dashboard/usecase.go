package revenue_dashboard

import (
	"context"
	"fmt"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

// UseCase use case аналитики по выручке
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет расчет метрик дашборда
// С пустым OwnerEmail метрики считаются по всей платформе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Metrics, error) {
	var bookings []*domain.BookingWithTurf
	var err error

	if req.OwnerEmail != "" {
		uc.logger.Info("RevenueDashboard: building metrics for owner=%s", req.OwnerEmail)
		bookings, err = uc.bookingRepo.GetByOwnerEmail(ctx, req.OwnerEmail)
	} else {
		uc.logger.Info("RevenueDashboard: building platform-wide metrics")
		bookings, err = uc.bookingRepo.GetAll(ctx)
	}
	if err != nil {
		uc.logger.Error("RevenueDashboard: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	metrics := Aggregate(bookings)
	uc.logger.Info("RevenueDashboard: metrics built, %d paid bookings", metrics.TotalBookings)
	return metrics, nil
}
