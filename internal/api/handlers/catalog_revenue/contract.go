package catalog_revenue

import (
	"context"

	"github.com/booknjoy/turf-booking-service/internal/service/turfs/models"
)

type TurfService interface {
	CatalogRevenue(ctx context.Context) ([]models.TurfRevenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
