package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusPaid      BookingStatus = "paid"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a paid (or pending) reservation of a turf slot
type Booking struct {
	ID          int64
	TurfID      int64
	UserEmail   string
	BookingDate time.Time
	Slot        Slot

	// Price цена слота на момент бронирования
	Price float64
	// DiscountApplied абсолютная скидка по промокоду, всегда <= Price
	DiscountApplied float64
	PromoCode       *string

	Status BookingStatus
	// PaymentRef синтетический идентификатор платежа demo-флоу
	PaymentRef *string
	// IdempotencyKey клиентский ключ, защищающий от дублей при повторной отправке
	IdempotencyKey *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NetAmount returns the amount actually charged
func (b *Booking) NetAmount() float64 {
	return b.Price - b.DiscountApplied
}

// IsPaid returns true if the booking has been paid
func (b *Booking) IsPaid() bool {
	return b.Status == StatusPaid
}

// CanTransitionTo enforces the status machine:
// переходы возможны только из pending в paid или cancelled
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status != StatusPending {
		return false
	}
	return next == StatusPaid || next == StatusCancelled
}

// BookingWithTurf бронирование, соединённое со своей площадкой
// Turf равен nil, если площадка была удалена
type BookingWithTurf struct {
	Booking
	Turf *Turf
}

// TurfName returns the joined turf name or the fallback label
func (b *BookingWithTurf) TurfName() string {
	if b.Turf == nil {
		return UnknownTurfName
	}
	return b.Turf.Name
}

// CostPrice returns the operator cost of the booked slot, 0 when unjoined
func (b *BookingWithTurf) CostPrice() float64 {
	if b.Turf == nil {
		return 0
	}
	return b.Turf.CostPrice.For(b.Slot)
}

// Profit returns net revenue minus the operator cost of the booked slot
func (b *BookingWithTurf) Profit() float64 {
	return b.NetAmount() - b.CostPrice()
}
