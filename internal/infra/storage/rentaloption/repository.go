package rentaloption

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/dbmetrics"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var optionColumns = []string{
	"id",
	"option_type",
	"name",
	"duration_minutes",
	"price",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с опциями аренды
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория опций аренды
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую опцию аренды
func (r *Repository) Create(ctx context.Context, opt *domain.RentalOption) (*domain.RentalOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rental_options").
		Columns("option_type", "name", "duration_minutes", "price", "is_available").
		Values(opt.Type, opt.Name, opt.DurationMinutes, opt.Price, opt.IsAvailable).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&opt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	opt.CreatedAt = createdAt.Time
	opt.UpdatedAt = updatedAt.Time

	return opt, nil
}

// GetByID получает опцию аренды по ID (включая soft-deleted -
// они нужны для отображения истории существующих броней)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RentalOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(optionColumns...).
		From("rental_options").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	opt, err := scanOption(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan option: %v", ErrScanRow, err)
	}

	return opt, nil
}

// List получает опции аренды.
// При onlyAvailable = true скрывает soft-deleted опции (для новых бронирований).
func (r *Repository) List(ctx context.Context, onlyAvailable bool) ([]*domain.RentalOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(optionColumns...).
		From("rental_options")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.OrderBy("duration_minutes ASC, id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	options := make([]*domain.RentalOption, 0)

	for rows.Next() {
		opt, err := scanOption(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		options = append(options, opt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return options, nil
}

// Update обновляет опцию аренды
func (r *Repository) Update(ctx context.Context, opt *domain.RentalOption) (*domain.RentalOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rental_options").
		Set("option_type", opt.Type).
		Set("name", opt.Name).
		Set("duration_minutes", opt.DurationMinutes).
		Set("price", opt.Price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": opt.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrOptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	opt.CreatedAt = createdAt.Time
	opt.UpdatedAt = updatedAt.Time

	return opt, nil
}

// SetAvailability включает или выключает опцию (soft delete при false:
// история существующих броней сохраняется, новые брони невозможны)
func (r *Repository) SetAvailability(ctx context.Context, id int64, available bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rental_options").
		Set("is_available", available).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOptionNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOption(row rowScanner) (*domain.RentalOption, error) {
	var opt domain.RentalOption
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&opt.ID,
		&opt.Type,
		&opt.Name,
		&opt.DurationMinutes,
		&opt.Price,
		&opt.IsAvailable,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	opt.CreatedAt = createdAt.Time
	opt.UpdatedAt = updatedAt.Time

	return &opt, nil
}
