package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/dbmetrics"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"r.id",
	"r.reference",
	"r.location_id",
	"r.rental_option_id",
	"r.reservation_date",
	"r.start_time",
	"r.duration_minutes",
	"r.is_currently_running",
	"r.has_finished",
	"r.option_name",
	"r.owner_name",
	"r.owner_phone",
	"r.total_price",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий для работы с бронями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь вместе со списком занимаемых гидроциклов.
// Если в контексте передана активная транзакция, использует её - при создании
// брони с проверкой доступности вставка ОБЯЗАНА идти в той же транзакции,
// что и проверка (иначе возможна гонка двух параллельных бронирований).
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"reference",
			"location_id",
			"rental_option_id",
			"reservation_date",
			"start_time",
			"duration_minutes",
			"is_currently_running",
			"has_finished",
			"option_name",
			"owner_name",
			"owner_phone",
			"total_price",
		).
		Values(
			res.Reference,
			res.LocationID,
			res.RentalOptionID,
			res.ReservationDate,
			res.StartTime,
			res.DurationMinutes,
			res.IsCurrentlyRunning,
			res.HasFinished,
			res.OptionName,
			res.OwnerName,
			res.OwnerPhone,
			res.TotalPrice,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	if err := r.insertJetSkiLinks(ctx, executor, res.ID, res.JetSkiIDs); err != nil {
		return nil, err
	}

	return res, nil
}

// GetByID получает бронь по ID вместе со списком занимаемых гидроциклов
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	if err := r.loadJetSkiIDs(ctx, executor, []*domain.Reservation{res}); err != nil {
		return nil, err
	}

	return res, nil
}

// GetByLocationWithFilter получает брони локации с гибкой фильтрацией.
// Поддерживает фильтрацию по дате, гидроциклу, исключение конкретной брони
// (self-exclusion при редактировании) и включение завершенных броней.
//
// Если вызов идет внутри транзакции и задана конкретная дата, добавляет
// FOR UPDATE OF r - блокировку строк на время транзакции создания брони.
func (r *Repository) GetByLocationWithFilter(ctx context.Context, filter domain.LocationReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Where(squirrel.Eq{"r.location_id": filter.LocationID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.reservation_date": *filter.Date})
	}

	if filter.JetSkiID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr(
			"r.id IN (SELECT reservation_id FROM reservation_jetskis WHERE jetski_id = ?)",
			*filter.JetSkiID,
		))
	}

	if filter.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"r.id": *filter.ExcludeID})
	}

	if !filter.IncludeFinished {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.has_finished": false})
	}

	if filter.Date != nil {
		// Для конкретной даты сортируем по времени начала
		selectBuilder = selectBuilder.OrderBy("r.start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("r.reservation_date DESC, r.start_time DESC")
	}

	// Блокировка строк при check-then-insert внутри транзакции
	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocationWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadJetSkiIDs(ctx, executor, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// GetByJetSkiWithFilter получает брони, занимающие указанный гидроцикл.
// Используется проверкой конфликтов: для каждого запрошенного гидроцикла
// выбираются его брони (кроме исключаемой), и предлагаемый интервал
// проверяется на пересечение с каждой.
//
// Если вызов идет внутри транзакции и задана конкретная дата, добавляет
// FOR UPDATE OF r для предотвращения гонки с параллельным бронированием.
func (r *Repository) GetByJetSkiWithFilter(ctx context.Context, filter domain.JetSkiReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Join("reservation_jetskis rj ON rj.reservation_id = r.id").
		Where(squirrel.Eq{"rj.jetski_id": filter.JetSkiID}).
		Where(squirrel.Eq{"r.has_finished": false})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.reservation_date": *filter.Date})
	}

	if filter.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"r.id": *filter.ExcludeID})
	}

	selectBuilder = selectBuilder.OrderBy("r.start_time ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByJetSkiWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByJetSkiWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadJetSkiIDs(ctx, executor, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// GetByDate получает все незавершенные брони на дату вместе со списками
// гидроциклов. Используется генератором слотов: занятость считается по
// всем броням дня независимо от локации, поскольку конфликт определяется
// гидроциклом, а не точкой проката.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Where(squirrel.Eq{"r.reservation_date": date}).
		Where(squirrel.Eq{"r.has_finished": false}).
		OrderBy("r.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadJetSkiIDs(ctx, executor, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// Update обновляет бронь и полностью заменяет список занимаемых гидроциклов
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("location_id", res.LocationID).
		Set("rental_option_id", res.RentalOptionID).
		Set("reservation_date", res.ReservationDate).
		Set("start_time", res.StartTime).
		Set("duration_minutes", res.DurationMinutes).
		Set("option_name", res.OptionName).
		Set("owner_name", res.OwnerName).
		Set("owner_phone", res.OwnerPhone).
		Set("total_price", res.TotalPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	if err := r.deleteJetSkiLinks(ctx, executor, res.ID); err != nil {
		return nil, err
	}
	if err := r.insertJetSkiLinks(ctx, executor, res.ID, res.JetSkiIDs); err != nil {
		return nil, err
	}

	return res, nil
}

// SetRunning помечает бронь как запущенную (гидроциклы выданы клиенту)
func (r *Repository) SetRunning(ctx context.Context, id int64) error {
	return r.setFlags(ctx, id, "SetRunning", map[string]interface{}{
		"is_currently_running": true,
	})
}

// SetFinished помечает бронь как завершенную
func (r *Repository) SetFinished(ctx context.Context, id int64) error {
	return r.setFlags(ctx, id, "SetFinished", map[string]interface{}{
		"is_currently_running": false,
		"has_finished":         true,
	})
}

func (r *Repository) setFlags(ctx context.Context, id int64, op string, flags map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	for column, value := range flags {
		updateBuilder = updateBuilder.Set(column, value)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронь; занятые ею гидроциклы освобождаются неявно
// (на них больше не ссылается ни одна бронь)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if err := r.deleteJetSkiLinks(ctx, executor, id); err != nil {
		return err
	}

	query, args, err := psqlbuilder.Delete("reservations").
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
		return ErrReservationNotFound
	}

	return nil
}

// Вспомогательные методы

func (r *Repository) insertJetSkiLinks(ctx context.Context, executor DBExecutor, reservationID int64, jetSkiIDs []int64) error {
	if len(jetSkiIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("reservation_jetskis").
		Columns("reservation_id", "jetski_id")

	for _, jetSkiID := range jetSkiIDs {
		insertBuilder = insertBuilder.Values(reservationID, jetSkiID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertJetSkiLinks - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertJetSkiLinks - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) deleteJetSkiLinks(ctx context.Context, executor DBExecutor, reservationID int64) error {
	query, args, err := psqlbuilder.Delete("reservation_jetskis").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: deleteJetSkiLinks - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: deleteJetSkiLinks - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// loadJetSkiIDs загружает списки гидроциклов для набора броней одним запросом
func (r *Repository) loadJetSkiIDs(ctx context.Context, executor DBExecutor, reservations []*domain.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	ids := make([]int64, len(reservations))
	byID := make(map[int64]*domain.Reservation, len(reservations))
	for i, res := range reservations {
		ids[i] = res.ID
		byID[res.ID] = res
		res.JetSkiIDs = make([]int64, 0)
	}

	query, args, err := psqlbuilder.Select("reservation_id", "jetski_id").
		From("reservation_jetskis").
		Where(squirrel.Eq{"reservation_id": ids}).
		OrderBy("jetski_id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadJetSkiIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadJetSkiIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var reservationID, jetSkiID int64
		if err := rows.Scan(&reservationID, &jetSkiID); err != nil {
			return fmt.Errorf("%w: loadJetSkiIDs - scan row: %v", ErrScanRow, err)
		}
		if res, ok := byID[reservationID]; ok {
			res.JetSkiIDs = append(res.JetSkiIDs, jetSkiID)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadJetSkiIDs - rows error: %v", ErrScanRow, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Reference,
		&res.LocationID,
		&res.RentalOptionID,
		&res.ReservationDate,
		&res.StartTime,
		&res.DurationMinutes,
		&res.IsCurrentlyRunning,
		&res.HasFinished,
		&res.OptionName,
		&res.OwnerName,
		&res.OwnerPhone,
		&res.TotalPrice,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
