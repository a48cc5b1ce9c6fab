package models

import (
	"time"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования, соединённого с площадкой
type BookingResponse struct {
	ID          int64  `json:"id"`
	TurfID      int64  `json:"turfId"`
	TurfName    string `json:"turfName"`
	UserEmail   string `json:"userEmail"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	Slot        string `json:"slot"`

	Price           float64 `json:"price"`
	DiscountApplied float64 `json:"discountApplied"`
	NetAmount       float64 `json:"netAmount"`
	PromoCode       *string `json:"promoCode,omitempty"`

	Status     string  `json:"status"`
	PaymentRef *string `json:"paymentRef,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.BookingWithTurf) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		TurfID:          b.TurfID,
		TurfName:        b.TurfName(),
		UserEmail:       b.UserEmail,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		Slot:            string(b.Slot),
		Price:           b.Price,
		DiscountApplied: b.DiscountApplied,
		NetAmount:       b.NetAmount(),
		PromoCode:       b.PromoCode,
		Status:          string(b.Status),
		PaymentRef:      b.PaymentRef,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.BookingWithTurf) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
