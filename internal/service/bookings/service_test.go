package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

type fakeBookingRepo struct {
	byUser  map[string][]*domain.BookingWithTurf
	byOwner map[string][]*domain.BookingWithTurf
	all     []*domain.BookingWithTurf
	err     error
}

func (f *fakeBookingRepo) GetByUserEmail(ctx context.Context, email string) ([]*domain.BookingWithTurf, error) {
	return f.byUser[email], f.err
}

func (f *fakeBookingRepo) GetByOwnerEmail(ctx context.Context, ownerEmail string) ([]*domain.BookingWithTurf, error) {
	return f.byOwner[ownerEmail], f.err
}

func (f *fakeBookingRepo) GetAll(ctx context.Context) ([]*domain.BookingWithTurf, error) {
	return f.all, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func joined(id int64, userEmail string, turf *domain.Turf) *domain.BookingWithTurf {
	return &domain.BookingWithTurf{
		Booking: domain.Booking{
			ID:          id,
			UserEmail:   userEmail,
			BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Slot:        domain.SlotMorning,
			Price:       100,
			Status:      domain.StatusPaid,
		},
		Turf: turf,
	}
}

func TestGetUserBookings(t *testing.T) {
	turf := &domain.Turf{ID: 1, Name: "Green Field"}
	repo := &fakeBookingRepo{
		byUser: map[string][]*domain.BookingWithTurf{
			"user@example.com": {joined(1, "user@example.com", turf)},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Green Field", resp.Bookings[0].TurfName)
	assert.Equal(t, "2026-09-01", resp.Bookings[0].BookingDate)
}

func TestGetUserBookings_EmptyEmail(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_NoBookings(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}

func TestGetOwnerBookings_ScopedToOwner(t *testing.T) {
	turf := &domain.Turf{ID: 1, Name: "Green Field", OwnerEmail: "owner@example.com"}
	repo := &fakeBookingRepo{
		byOwner: map[string][]*domain.BookingWithTurf{
			"owner@example.com": {
				joined(1, "alice@example.com", turf),
				joined(2, "bob@example.com", turf),
			},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetOwnerBookings(context.Background(), "owner@example.com")
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	other, err := svc.GetOwnerBookings(context.Background(), "other@example.com")
	require.NoError(t, err)
	assert.Empty(t, other.Bookings)
}

func TestGetAllBookings_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetAllBookings(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetUserBookings_DeletedTurf(t *testing.T) {
	repo := &fakeBookingRepo{
		byUser: map[string][]*domain.BookingWithTurf{
			"user@example.com": {joined(1, "user@example.com", nil)},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, domain.UnknownTurfName, resp.Bookings[0].TurfName)
}
