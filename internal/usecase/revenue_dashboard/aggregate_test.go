package revenue_dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

func date(s string) time.Time {
	d, _ := time.Parse(domain.DateFormat, s)
	return d
}

func paidBooking(turf *domain.Turf, day string, slot domain.Slot, price, discount float64) *domain.BookingWithTurf {
	return &domain.BookingWithTurf{
		Booking: domain.Booking{
			BookingDate:     date(day),
			Slot:            slot,
			Price:           price,
			DiscountApplied: discount,
			Status:          domain.StatusPaid,
		},
		Turf: turf,
	}
}

func TestAggregate_Empty(t *testing.T) {
	m := Aggregate(nil)

	assert.Equal(t, 0.0, m.TotalRevenue)
	assert.Equal(t, 0, m.TotalBookings)
	assert.Equal(t, 0.0, m.AvgRevenue)
	assert.Equal(t, 0.0, m.TotalProfit)
	assert.Empty(t, m.RevenueByDate)
	assert.Empty(t, m.RevenueByTurf)
}

func TestAggregate_RevenueAndProfit(t *testing.T) {
	turf := &domain.Turf{
		Name:      "Green Field",
		CostPrice: domain.SlotPrices{Morning: 40},
	}

	// Цена 100, промокод SAVE10 дает скидку 10: выручка 90, прибыль 90-40=50
	m := Aggregate([]*domain.BookingWithTurf{
		paidBooking(turf, "2026-08-01", domain.SlotMorning, 100, 10),
	})

	assert.Equal(t, 90.0, m.TotalRevenue)
	assert.Equal(t, 1, m.TotalBookings)
	assert.Equal(t, 90.0, m.AvgRevenue)
	assert.Equal(t, 50.0, m.TotalProfit)

	require.Len(t, m.RevenueByTurf, 1)
	assert.Equal(t, "Green Field", m.RevenueByTurf[0].TurfName)
	assert.Equal(t, 90.0, m.RevenueByTurf[0].Revenue)
	assert.Equal(t, 1, m.RevenueByTurf[0].Bookings)
}

func TestAggregate_SkipsUnpaid(t *testing.T) {
	turf := &domain.Turf{Name: "Green Field"}

	pending := paidBooking(turf, "2026-08-01", domain.SlotMorning, 100, 0)
	pending.Status = domain.StatusPending
	cancelled := paidBooking(turf, "2026-08-01", domain.SlotMorning, 100, 0)
	cancelled.Status = domain.StatusCancelled

	m := Aggregate([]*domain.BookingWithTurf{
		pending,
		cancelled,
		paidBooking(turf, "2026-08-01", domain.SlotEvening, 200, 0),
	})

	assert.Equal(t, 200.0, m.TotalRevenue)
	assert.Equal(t, 1, m.TotalBookings)
}

func TestAggregate_DatesChronological(t *testing.T) {
	turf := &domain.Turf{Name: "Green Field"}

	m := Aggregate([]*domain.BookingWithTurf{
		paidBooking(turf, "2026-08-15", domain.SlotMorning, 100, 0),
		paidBooking(turf, "2026-08-02", domain.SlotMorning, 100, 0),
		paidBooking(turf, "2026-08-02", domain.SlotEvening, 50, 0),
		paidBooking(turf, "2025-12-31", domain.SlotNight, 70, 0),
	})

	require.Len(t, m.RevenueByDate, 3)
	assert.Equal(t, "2025-12-31", m.RevenueByDate[0].Date)
	assert.Equal(t, "2026-08-02", m.RevenueByDate[1].Date)
	assert.Equal(t, "2026-08-15", m.RevenueByDate[2].Date)
	assert.Equal(t, 150.0, m.RevenueByDate[1].Revenue)
}

func TestAggregate_DeletedTurfFallsBackToUnknown(t *testing.T) {
	m := Aggregate([]*domain.BookingWithTurf{
		paidBooking(nil, "2026-08-01", domain.SlotMorning, 100, 0),
	})

	// Без площадки выручка учитывается, себестоимость считается нулевой
	assert.Equal(t, 100.0, m.TotalRevenue)
	assert.Equal(t, 100.0, m.TotalProfit)
	require.Len(t, m.RevenueByTurf, 1)
	assert.Equal(t, domain.UnknownTurfName, m.RevenueByTurf[0].TurfName)
}

func TestAggregate_TurfsSortedByName(t *testing.T) {
	a := &domain.Turf{Name: "Alpha Arena"}
	z := &domain.Turf{Name: "Zen Court"}

	m := Aggregate([]*domain.BookingWithTurf{
		paidBooking(z, "2026-08-01", domain.SlotMorning, 100, 0),
		paidBooking(a, "2026-08-01", domain.SlotMorning, 100, 0),
	})

	require.Len(t, m.RevenueByTurf, 2)
	assert.Equal(t, "Alpha Arena", m.RevenueByTurf[0].TurfName)
	assert.Equal(t, "Zen Court", m.RevenueByTurf[1].TurfName)
}
