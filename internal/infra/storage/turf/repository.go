package turf

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/booknjoy/turf-booking-service/internal/domain"
	"github.com/booknjoy/turf-booking-service/pkg/dbmetrics"
	"github.com/booknjoy/turf-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с площадками
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var turfColumns = []string{
	"id",
	"name",
	"state",
	"city",
	"area",
	"address",
	"pincode",
	"lat",
	"lng",
	"image",
	"sports_category",
	"size",
	"cost_price_morning",
	"cost_price_afternoon",
	"cost_price_evening",
	"cost_price_night",
	"customer_price_morning",
	"customer_price_afternoon",
	"customer_price_evening",
	"customer_price_night",
	"created_by",
	"owner_email",
	"created_at",
	"updated_at",
}

// Create создает новую площадку
func (r *Repository) Create(ctx context.Context, turf *domain.Turf) (*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("turfs").
		Columns(
			"name",
			"state",
			"city",
			"area",
			"address",
			"pincode",
			"lat",
			"lng",
			"image",
			"sports_category",
			"size",
			"cost_price_morning",
			"cost_price_afternoon",
			"cost_price_evening",
			"cost_price_night",
			"customer_price_morning",
			"customer_price_afternoon",
			"customer_price_evening",
			"customer_price_night",
			"created_by",
			"owner_email",
		).
		Values(
			turf.Name,
			turf.Location.State,
			turf.Location.City,
			turf.Location.Area,
			turf.Location.Address,
			turf.Location.Pincode,
			turf.Location.Coordinates.Lat,
			turf.Location.Coordinates.Lng,
			turf.Image,
			turf.SportsCategory,
			turf.Size,
			turf.CostPrice.Morning,
			turf.CostPrice.Afternoon,
			turf.CostPrice.Evening,
			turf.CostPrice.Night,
			turf.CustomerPrice.Morning,
			turf.CustomerPrice.Afternoon,
			turf.CustomerPrice.Evening,
			turf.CustomerPrice.Night,
			turf.CreatedBy,
			turf.OwnerEmail,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&turf.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	turf.CreatedAt = createdAt.Time
	turf.UpdatedAt = updatedAt.Time

	return turf, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	return r.queryOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetAll получает все площадки в порядке создания
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Turf, error) {
	return r.queryMany(ctx, "GetAll", nil)
}

// GetByOwnerEmail получает площадки владельца
func (r *Repository) GetByOwnerEmail(ctx context.Context, ownerEmail string) ([]*domain.Turf, error) {
	return r.queryMany(ctx, "GetByOwnerEmail", squirrel.Eq{"owner_email": ownerEmail})
}

// Update полностью обновляет изменяемые поля площадки
func (r *Repository) Update(ctx context.Context, turf *domain.Turf) (*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("turfs").
		Set("name", turf.Name).
		Set("state", turf.Location.State).
		Set("city", turf.Location.City).
		Set("area", turf.Location.Area).
		Set("address", turf.Location.Address).
		Set("pincode", turf.Location.Pincode).
		Set("lat", turf.Location.Coordinates.Lat).
		Set("lng", turf.Location.Coordinates.Lng).
		Set("image", turf.Image).
		Set("sports_category", turf.SportsCategory).
		Set("size", turf.Size).
		Set("cost_price_morning", turf.CostPrice.Morning).
		Set("cost_price_afternoon", turf.CostPrice.Afternoon).
		Set("cost_price_evening", turf.CostPrice.Evening).
		Set("cost_price_night", turf.CostPrice.Night).
		Set("customer_price_morning", turf.CustomerPrice.Morning).
		Set("customer_price_afternoon", turf.CustomerPrice.Afternoon).
		Set("customer_price_evening", turf.CustomerPrice.Evening).
		Set("customer_price_night", turf.CustomerPrice.Night).
		Set("owner_email", turf.OwnerEmail).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": turf.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrTurfNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	turf.CreatedAt = createdAt.Time
	turf.UpdatedAt = updatedAt.Time

	return turf, nil
}

// Delete удаляет площадку
// Бронирования остаются и в выборках получают проекцию площадки nil
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("turfs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTurfNotFound
	}

	return nil
}

func (r *Repository) queryOne(ctx context.Context, method string, where interface{}) (*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(turfColumns...).
		From("turfs").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	turf, err := scanTurf(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrTurfNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan turf: %v", ErrScanRow, method, err)
	}

	return turf, nil
}

func (r *Repository) queryMany(ctx context.Context, method string, where interface{}) ([]*domain.Turf, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(turfColumns...).
		From("turfs").
		OrderBy("id ASC")

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

	turfs := make([]*domain.Turf, 0)
	for rows.Next() {
		turf, err := scanTurf(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		turfs = append(turfs, turf)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return turfs, nil
}

// scanTurf сканирует строку площадки, scan — row.Scan или rows.Scan
func scanTurf(scan func(dest ...interface{}) error) (*domain.Turf, error) {
	var turf domain.Turf
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&turf.ID,
		&turf.Name,
		&turf.Location.State,
		&turf.Location.City,
		&turf.Location.Area,
		&turf.Location.Address,
		&turf.Location.Pincode,
		&turf.Location.Coordinates.Lat,
		&turf.Location.Coordinates.Lng,
		&turf.Image,
		&turf.SportsCategory,
		&turf.Size,
		&turf.CostPrice.Morning,
		&turf.CostPrice.Afternoon,
		&turf.CostPrice.Evening,
		&turf.CostPrice.Night,
		&turf.CustomerPrice.Morning,
		&turf.CustomerPrice.Afternoon,
		&turf.CustomerPrice.Evening,
		&turf.CustomerPrice.Night,
		&turf.CreatedBy,
		&turf.OwnerEmail,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	turf.CreatedAt = createdAt.Time
	turf.UpdatedAt = updatedAt.Time

	return &turf, nil
}
