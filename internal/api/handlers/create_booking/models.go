package create_booking

import (
	"time"

	"github.com/booknjoy/turf-booking-service/internal/domain"
	createBooking "github.com/booknjoy/turf-booking-service/internal/usecase/create_booking"
)

// DemoPaymentRequest HTTP request model
type DemoPaymentRequest struct {
	TurfID         int64    `json:"turfId"`
	BookingDate    string   `json:"bookingDate"` // "2026-08-30"
	Slot           string   `json:"slot"`        // "morning" | "afternoon" | "evening" | "night"
	ListedPrice    *float64 `json:"listedPrice,omitempty"`
	PromoCode      *string  `json:"promoCode,omitempty"`
	IdempotencyKey *string  `json:"idempotencyKey,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	TurfID          int64   `json:"turfId"`
	TurfName        string  `json:"turfName"`
	UserEmail       string  `json:"userEmail"`
	BookingDate     string  `json:"bookingDate"`
	Slot            string  `json:"slot"`
	Price           float64 `json:"price"`
	DiscountApplied float64 `json:"discountApplied"`
	NetAmount       float64 `json:"netAmount"`
	PromoCode       *string `json:"promoCode,omitempty"`
	Status          string  `json:"status"`
	PaymentRef      *string `json:"paymentRef,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// userEmail берётся из контекста аутентификации, а не из тела запроса
func (r *DemoPaymentRequest) ToUseCaseRequest(userEmail string) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TurfID:         r.TurfID,
		UserEmail:      userEmail,
		BookingDate:    bookingDate,
		Slot:           r.Slot,
		ListedPrice:    r.ListedPrice,
		PromoCode:      r.PromoCode,
		IdempotencyKey: r.IdempotencyKey,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		TurfID:          resp.TurfID,
		TurfName:        resp.TurfName,
		UserEmail:       resp.UserEmail,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		Slot:            resp.Slot,
		Price:           resp.Price,
		DiscountApplied: resp.DiscountApplied,
		NetAmount:       resp.NetAmount,
		PromoCode:       resp.PromoCode,
		Status:          resp.Status,
		PaymentRef:      resp.PaymentRef,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
