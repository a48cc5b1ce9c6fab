package booking_analytics

import (
	"context"

	revenueDashboard "github.com/booknjoy/turf-booking-service/internal/usecase/revenue_dashboard"
)

type RevenueDashboardUseCase interface {
	Execute(ctx context.Context, req *revenueDashboard.Request) (*revenueDashboard.Metrics, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
