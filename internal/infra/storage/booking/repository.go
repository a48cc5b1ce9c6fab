package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/booknjoy/turf-booking-service/internal/domain"
	"github.com/booknjoy/turf-booking-service/pkg/dbmetrics"
	"github.com/booknjoy/turf-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// joinedColumns колонки бронирования вместе с проекцией площадки (LEFT JOIN)
// Площадка может быть удалена, поэтому её колонки сканируются как nullable
var joinedColumns = []string{
	"b.id",
	"b.turf_id",
	"b.user_email",
	"b.booking_date",
	"b.slot",
	"b.price",
	"b.discount_applied",
	"b.promo_code",
	"b.status",
	"b.payment_ref",
	"b.idempotency_key",
	"b.created_at",
	"b.updated_at",
	"t.id",
	"t.name",
	"t.sports_category",
	"t.owner_email",
	"t.cost_price_morning",
	"t.cost_price_afternoon",
	"t.cost_price_evening",
	"t.cost_price_night",
	"t.customer_price_morning",
	"t.customer_price_afternoon",
	"t.customer_price_evening",
	"t.customer_price_night",
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"turf_id",
			"user_email",
			"booking_date",
			"slot",
			"price",
			"discount_applied",
			"promo_code",
			"status",
			"payment_ref",
			"idempotency_key",
		).
		Values(
			booking.TurfID,
			booking.UserEmail,
			booking.BookingDate,
			booking.Slot,
			booking.Price,
			booking.DiscountApplied,
			booking.PromoCode,
			booking.Status,
			booking.PaymentRef,
			booking.IdempotencyKey,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByIdempotencyKey находит бронирование по клиентскому ключу идемпотентности
// Используется для безопасного ретрая создания бронирования
func (r *Repository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"turf_id",
		"user_email",
		"booking_date",
		"slot",
		"price",
		"discount_applied",
		"promo_code",
		"status",
		"payment_ref",
		"idempotency_key",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"idempotency_key": key})

	// Внутри транзакции блокируем строку, чтобы исключить гонку с параллельным ретраем
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIdempotencyKey - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.TurfID,
		&booking.UserEmail,
		&booking.BookingDate,
		&booking.Slot,
		&booking.Price,
		&booking.DiscountApplied,
		&booking.PromoCode,
		&booking.Status,
		&booking.PaymentRef,
		&booking.IdempotencyKey,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIdempotencyKey - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// GetByUserEmail получает бронирования клиента, соединённые с площадками
// Порядок — порядок создания (по id)
func (r *Repository) GetByUserEmail(ctx context.Context, email string) ([]*domain.BookingWithTurf, error) {
	return r.queryJoined(ctx, "GetByUserEmail", squirrel.Eq{"b.user_email": email})
}

// GetByOwnerEmail получает бронирования всех площадок владельца
// Скоупинг делается через join на turfs.owner_email
func (r *Repository) GetByOwnerEmail(ctx context.Context, ownerEmail string) ([]*domain.BookingWithTurf, error) {
	return r.queryJoined(ctx, "GetByOwnerEmail", squirrel.Eq{"t.owner_email": ownerEmail})
}

// GetAll получает все бронирования с площадками
// Используется админской аналитикой
func (r *Repository) GetAll(ctx context.Context) ([]*domain.BookingWithTurf, error) {
	return r.queryJoined(ctx, "GetAll", nil)
}

func (r *Repository) queryJoined(ctx context.Context, method string, where interface{}) ([]*domain.BookingWithTurf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(joinedColumns...).
		From("bookings b").
		LeftJoin("turfs t ON t.id = b.turf_id").
		OrderBy("b.id ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	return r.scanJoined(rows, method)
}

// scanJoined сканирует строки бронирований с nullable-проекцией площадки
func (r *Repository) scanJoined(rows *sql.Rows, method string) ([]*domain.BookingWithTurf, error) {
	bookings := make([]*domain.BookingWithTurf, 0)

	for rows.Next() {
		var b domain.BookingWithTurf
		var createdAt, updatedAt sql.NullTime

		var (
			turfID            sql.NullInt64
			turfName          sql.NullString
			turfCategory      sql.NullString
			turfOwner         sql.NullString
			costMorning       sql.NullFloat64
			costAfternoon     sql.NullFloat64
			costEvening       sql.NullFloat64
			costNight         sql.NullFloat64
			customerMorning   sql.NullFloat64
			customerAfternoon sql.NullFloat64
			customerEvening   sql.NullFloat64
			customerNight     sql.NullFloat64
		)

		err := rows.Scan(
			&b.ID,
			&b.TurfID,
			&b.UserEmail,
			&b.BookingDate,
			&b.Slot,
			&b.Price,
			&b.DiscountApplied,
			&b.PromoCode,
			&b.Status,
			&b.PaymentRef,
			&b.IdempotencyKey,
			&createdAt,
			&updatedAt,
			&turfID,
			&turfName,
			&turfCategory,
			&turfOwner,
			&costMorning,
			&costAfternoon,
			&costEvening,
			&costNight,
			&customerMorning,
			&customerAfternoon,
			&customerEvening,
			&customerNight,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		// Площадка могла быть удалена — тогда проекция остаётся nil
		if turfID.Valid {
			b.Turf = &domain.Turf{
				ID:             turfID.Int64,
				Name:           turfName.String,
				SportsCategory: turfCategory.String,
				OwnerEmail:     turfOwner.String,
				CostPrice: domain.SlotPrices{
					Morning:   costMorning.Float64,
					Afternoon: costAfternoon.Float64,
					Evening:   costEvening.Float64,
					Night:     costNight.Float64,
				},
				CustomerPrice: domain.SlotPrices{
					Morning:   customerMorning.Float64,
					Afternoon: customerAfternoon.Float64,
					Evening:   customerEvening.Float64,
					Night:     customerNight.Float64,
				},
			}
		}

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return bookings, nil
}
