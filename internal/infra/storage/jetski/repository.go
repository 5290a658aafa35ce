package jetski

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/dbmetrics"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/psqlbuilder"
)

var jetSkiColumns = []string{
	"id",
	"name",
	"registration",
	"location_id",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с гидроциклами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гидроциклов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый гидроцикл
func (r *Repository) Create(ctx context.Context, js *domain.JetSki) (*domain.JetSki, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("jetskis").
		Columns("name", "registration", "location_id", "status").
		Values(js.Name, js.Registration, js.LocationID, js.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&js.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	js.CreatedAt = createdAt.Time
	js.UpdatedAt = updatedAt.Time

	return js, nil
}

// GetByID получает гидроцикл по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.JetSki, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(jetSkiColumns...).
		From("jetskis").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	js, err := scanJetSki(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrJetSkiNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan jetski: %v", ErrScanRow, err)
	}

	return js, nil
}

// GetByIDs получает набор гидроциклов по списку ID.
// Отсутствующие ID не являются ошибкой - вызывающая сторона сверяет
// длину результата со списком запрошенных.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.JetSki, error) {
	if len(ids) == 0 {
		return []*domain.JetSki{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(jetSkiColumns...).
		From("jetskis").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanJetSkis(rows)
}

// List получает гидроциклы с фильтрацией по локации и статусу
func (r *Repository) List(ctx context.Context, filter domain.JetSkiFilter) ([]*domain.JetSki, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(jetSkiColumns...).
		From("jetskis")

	if filter.LocationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location_id": *filter.LocationID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanJetSkis(rows)
}

// ListBookable получает гидроциклы со статусом AVAILABLE, опционально по локации.
// Используется генератором слотов: только эти юниты участвуют в подсчете
// свободного флота.
func (r *Repository) ListBookable(ctx context.Context, locationID *int64) ([]*domain.JetSki, error) {
	status := domain.JetSkiAvailable
	return r.List(ctx, domain.JetSkiFilter{LocationID: locationID, Status: &status})
}

// UpdateStatus обновляет операционный статус гидроцикла
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.JetSkiStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("jetskis").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrJetSkiNotFound
	}

	return nil
}

// Update обновляет данные гидроцикла
func (r *Repository) Update(ctx context.Context, js *domain.JetSki) (*domain.JetSki, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("jetskis").
		Set("name", js.Name).
		Set("registration", js.Registration).
		Set("location_id", js.LocationID).
		Set("status", js.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": js.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrJetSkiNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	js.CreatedAt = createdAt.Time
	js.UpdatedAt = updatedAt.Time

	return js, nil
}

// Delete удаляет гидроцикл
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("jetskis").
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
		return ErrJetSkiNotFound
	}

	return nil
}

// Вспомогательные методы

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJetSki(row rowScanner) (*domain.JetSki, error) {
	var js domain.JetSki
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&js.ID,
		&js.Name,
		&js.Registration,
		&js.LocationID,
		&js.Status,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	js.CreatedAt = createdAt.Time
	js.UpdatedAt = updatedAt.Time

	return &js, nil
}

func scanJetSkis(rows *sql.Rows) ([]*domain.JetSki, error) {
	jetSkis := make([]*domain.JetSki, 0)

	for rows.Next() {
		js, err := scanJetSki(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanJetSkis - scan row: %v", ErrScanRow, err)
		}
		jetSkis = append(jetSkis, js)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanJetSkis - rows error: %v", ErrScanRow, err)
	}

	return jetSkis, nil
}
