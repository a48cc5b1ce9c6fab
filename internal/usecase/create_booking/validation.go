package create_booking

import (
	"fmt"
	"strings"

	"github.com/booknjoy/turf-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TurfID <= 0 {
		return fmt.Errorf("%w: turfId must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserEmail) == "" {
		return fmt.Errorf("%w: userEmail is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.BookingDate.IsZero() {
		return fmt.Errorf("%w: bookingDate is required", ErrInvalidInput)
	}

	// Слот должен входить в закрытый перечень
	if _, err := domain.ParseSlot(req.Slot); err != nil {
		return fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, req.Slot)
	}

	if req.ListedPrice != nil && *req.ListedPrice < 0 {
		return fmt.Errorf("%w: listedPrice must be non-negative", ErrInvalidInput)
	}

	if req.PromoCode != nil && len(*req.PromoCode) > domain.MaxPromoCodeLength {
		return fmt.Errorf("%w: promoCode is too long", ErrInvalidInput)
	}

	return nil
}

// clampDiscount ограничивает скидку ценой слота, списание не может быть отрицательным
func clampDiscount(discount, price float64) float64 {
	if discount > price {
		return price
	}
	if discount < 0 {
		return 0
	}
	return discount
}
