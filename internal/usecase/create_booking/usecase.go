package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/booknjoy/turf-booking-service/internal/domain"
	bookingRepo "github.com/booknjoy/turf-booking-service/internal/infra/storage/booking"
	turfRepo "github.com/booknjoy/turf-booking-service/internal/infra/storage/turf"
)

// notifyTimeout бюджет на отправку подтверждения после коммита
const notifyTimeout = 30 * time.Second

// UseCase use case создания бронирования с demo-оплатой
// Бронирование сразу записывается со статусом paid, без внешнего платёжного шлюза
type UseCase struct {
	bookingRepo  BookingRepository
	turfRepo     TurfRepository
	promoEngine  PromoEngine
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	turfRepo TurfRepository,
	promoEngine PromoEngine,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		turfRepo:     turfRepo,
		promoEngine:  promoEngine,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию: проверка ключа идемпотентности и вставка
// должны быть атомарными при конкурирующих повторных отправках
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, turf=%d, date=%s, slot=%s",
		req.UserEmail, req.TurfID, req.BookingDate.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	slot, _ := domain.ParseSlot(req.Slot)

	// 2. Получаем площадку
	turf, err := uc.turfRepo.GetByID(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, turfRepo.ErrTurfNotFound) {
			uc.logger.Warn("CreateBooking: turf id=%d not found", req.TurfID)
			return nil, ErrTurfNotFound
		}
		uc.logger.Error("CreateBooking: failed to get turf id=%d: %v", req.TurfID, err)
		return nil, fmt.Errorf("%w: failed to get turf: %v", ErrInternal, err)
	}

	// 3. Цена всегда берётся с сервера, клиентская цена только сверяется
	price := turf.CustomerPrice.For(slot)
	if req.ListedPrice != nil && *req.ListedPrice != price {
		uc.logger.Warn("CreateBooking: price mismatch for turf=%d slot=%s: listed=%.2f catalog=%.2f",
			req.TurfID, slot, *req.ListedPrice, price)
		return nil, ErrPriceMismatch
	}

	// 4. Применяем промокод; нераспознанный код не ошибка, бронирование идет без скидки
	var discount float64
	var appliedCode *string
	if req.PromoCode != nil && *req.PromoCode != "" {
		if d, ok := uc.promoEngine.Apply(*req.PromoCode); ok {
			discount = clampDiscount(d, price)
			appliedCode = req.PromoCode
			uc.logger.Info("CreateBooking: promo code %s applied, discount=%.2f", *req.PromoCode, discount)
		} else {
			uc.logger.Info("CreateBooking: promo code %s not recognized, ignored", *req.PromoCode)
		}
	}

	// 5. Синтетический идентификатор платежа demo-флоу
	now := uc.timeProvider.Now()
	paymentRef := fmt.Sprintf("%s%d", domain.PaymentRefPrefix, now.UnixMilli())

	// Переменные для хранения результата
	var result *domain.Booking
	var deduplicated bool

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Проверяем ключ идемпотентности; при совпадении возвращаем существующее бронирование
		if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
			existing, err := uc.bookingRepo.GetByIdempotencyKey(txCtx, *req.IdempotencyKey)
			if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Error("CreateBooking: failed to check idempotency key: %v", err)
				return fmt.Errorf("%w: failed to check idempotency key: %v", ErrInternal, err)
			}
			if existing != nil {
				uc.logger.Info("CreateBooking: idempotency key matched booking id=%d, returning existing", existing.ID)
				result = existing
				deduplicated = true
				return nil
			}
		}

		// 6.2. Создаем бронирование сразу в статусе paid
		booking := &domain.Booking{
			TurfID:          req.TurfID,
			UserEmail:       req.UserEmail,
			BookingDate:     req.BookingDate,
			Slot:            slot,
			Price:           price,
			DiscountApplied: discount,
			PromoCode:       appliedCode,
			Status:          domain.StatusPaid,
			PaymentRef:      &paymentRef,
			IdempotencyKey:  req.IdempotencyKey,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d confirmed, amount=%.2f", result.ID, result.NetAmount())

	// 7. Отправляем подтверждение после коммита; сбой отправки не откатывает бронирование
	if !deduplicated {
		uc.dispatchConfirmation(result, turf.Name)
	}

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		TurfID:          result.TurfID,
		TurfName:        turf.Name,
		UserEmail:       result.UserEmail,
		BookingDate:     result.BookingDate,
		Slot:            string(result.Slot),
		Price:           result.Price,
		DiscountApplied: result.DiscountApplied,
		NetAmount:       result.NetAmount(),
		PromoCode:       result.PromoCode,
		Status:          string(result.Status),
		PaymentRef:      result.PaymentRef,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// dispatchConfirmation отправляет подтверждение в фоне с собственным контекстом:
// контекст HTTP-запроса к этому моменту уже может быть отменен
func (uc *UseCase) dispatchConfirmation(booking *domain.Booking, turfName string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.SendBookingConfirmation(ctx, booking, turfName); err != nil {
			uc.logger.Warn("CreateBooking: confirmation for booking id=%d not delivered: %v", booking.ID, err)
		}
	}()
}
