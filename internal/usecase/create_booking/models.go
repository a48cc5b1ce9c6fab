package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования с demo-оплатой
type Request struct {
	TurfID      int64     // ID площадки
	UserEmail   string    // Email клиента
	BookingDate time.Time // Дата бронирования (без времени)
	Slot        string    // Слот дня ("morning", "afternoon", "evening", "night")

	// ListedPrice цена, которую видел клиент; при расхождении с прайс-листом запрос отклоняется
	ListedPrice *float64
	// PromoCode промокод; нераспознанный код молча игнорируется
	PromoCode *string
	// IdempotencyKey клиентский ключ повторной отправки; при совпадении возвращается существующее бронирование
	IdempotencyKey *string
}

// Response модель ответа с оплаченным бронированием
type Response struct {
	ID              int64     // ID бронирования
	TurfID          int64     // ID площадки
	TurfName        string    // Название площадки
	UserEmail       string    // Email клиента
	BookingDate     time.Time // Дата бронирования
	Slot            string    // Слот дня
	Price           float64   // Цена слота по прайс-листу
	DiscountApplied float64   // Применённая скидка
	NetAmount       float64   // Списанная сумма
	PromoCode       *string   // Применённый промокод
	Status          string    // Статус бронирования
	PaymentRef      *string   // Идентификатор demo-платежа

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
