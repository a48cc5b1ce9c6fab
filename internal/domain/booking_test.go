package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetAmount(t *testing.T) {
	b := &Booking{Price: 100, DiscountApplied: 10}
	assert.Equal(t, 90.0, b.NetAmount())

	full := &Booking{Price: 100, DiscountApplied: 100}
	assert.Equal(t, 0.0, full.NetAmount())
}

func TestCanTransitionTo(t *testing.T) {
	pending := &Booking{Status: StatusPending}
	assert.True(t, pending.CanTransitionTo(StatusPaid))
	assert.True(t, pending.CanTransitionTo(StatusCancelled))
	assert.False(t, pending.CanTransitionTo(StatusPending))

	paid := &Booking{Status: StatusPaid}
	assert.False(t, paid.CanTransitionTo(StatusCancelled))
	assert.False(t, paid.CanTransitionTo(StatusPending))

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.CanTransitionTo(StatusPaid))
}

func TestBookingWithTurf_MissingTurf(t *testing.T) {
	b := &BookingWithTurf{
		Booking: Booking{Price: 100, DiscountApplied: 10, Slot: SlotMorning},
	}

	assert.Equal(t, UnknownTurfName, b.TurfName())
	assert.Equal(t, 0.0, b.CostPrice())
	assert.Equal(t, 90.0, b.Profit())
}

func TestBookingWithTurf_Profit(t *testing.T) {
	b := &BookingWithTurf{
		Booking: Booking{Price: 100, DiscountApplied: 10, Slot: SlotMorning, Status: StatusPaid},
		Turf: &Turf{
			Name:      "Green Field",
			CostPrice: SlotPrices{Morning: 40},
		},
	}

	assert.Equal(t, "Green Field", b.TurfName())
	assert.Equal(t, 40.0, b.CostPrice())
	assert.Equal(t, 50.0, b.Profit())
}
