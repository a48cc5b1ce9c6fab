package revenue_dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

type fakeBookingRepo struct {
	all       []*domain.BookingWithTurf
	byOwner   map[string][]*domain.BookingWithTurf
	err       error
	lastOwner string
}

func (f *fakeBookingRepo) GetAll(ctx context.Context) ([]*domain.BookingWithTurf, error) {
	return f.all, f.err
}

func (f *fakeBookingRepo) GetByOwnerEmail(ctx context.Context, ownerEmail string) ([]*domain.BookingWithTurf, error) {
	f.lastOwner = ownerEmail
	return f.byOwner[ownerEmail], f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_PlatformWide(t *testing.T) {
	turf := &domain.Turf{Name: "Green Field"}
	repo := &fakeBookingRepo{
		all: []*domain.BookingWithTurf{
			paidBooking(turf, "2026-08-01", domain.SlotMorning, 100, 0),
			paidBooking(turf, "2026-08-02", domain.SlotEvening, 200, 20),
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	m, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, 280.0, m.TotalRevenue)
	assert.Equal(t, 2, m.TotalBookings)
}

func TestExecute_OwnerScoped(t *testing.T) {
	turf := &domain.Turf{Name: "Green Field", OwnerEmail: "owner@example.com"}
	repo := &fakeBookingRepo{
		byOwner: map[string][]*domain.BookingWithTurf{
			"owner@example.com": {
				paidBooking(turf, "2026-08-01", domain.SlotMorning, 100, 0),
			},
		},
	}
	uc := NewUseCase(repo, nopLogger{})

	m, err := uc.Execute(context.Background(), &Request{OwnerEmail: "owner@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", repo.lastOwner)
	assert.Equal(t, 100.0, m.TotalRevenue)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}
