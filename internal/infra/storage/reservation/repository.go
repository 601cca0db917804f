package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/pgerrors"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
)

var selectColumns = []string{
	"r.id",
	"r.table_id",
	"r.owner_id",
	"r.name",
	"r.email",
	"r.phone",
	"r.date",
	"r.time",
	"r.guests",
	"r.is_active",
	"r.status",
	"r.created_at",
	"r.updated_at",
	"t.number",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование.
// Проверка доступности выполняется до вызова, в той же транзакции (через context.Value)
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"table_id",
			"owner_id",
			"name",
			"email",
			"phone",
			"date",
			"time",
			"guests",
			"is_active",
			"status",
		).
		Values(
			reservation.TableID,
			reservation.OwnerID,
			reservation.Name,
			reservation.Email,
			reservation.Phone,
			domain.DateOnly(reservation.Date),
			reservation.Time,
			reservation.Guests,
			reservation.IsActive,
			reservation.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if pgerrors.IsForeignKeyViolation(err) {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := baseSelect().
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return reservation, nil
}

// List получает бронирования по фильтру.
// Без IncludeCanceled и без явного статуса отмененные брони исключаются
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	builder := baseSelect()

	if filter.TableID != nil {
		builder = builder.Where(squirrel.Eq{"r.table_id": *filter.TableID})
	}
	if filter.OwnerID != nil {
		builder = builder.Where(squirrel.Eq{"r.owner_id": *filter.OwnerID})
	}
	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"r.date": domain.DateOnly(*filter.Date)})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"r.status": *filter.Status})
	} else if !filter.IncludeCanceled {
		builder = builder.Where(squirrel.NotEq{"r.status": domain.StatusCanceled})
	}

	builder = builder.OrderBy("r.date DESC", "r.time DESC")

	return r.query(ctx, "List", builder)
}

// ActiveForTableAndDate возвращает неотмененные брони стола на дату.
// Это входные данные проверки доступности
func (r *Repository) ActiveForTableAndDate(ctx context.Context, tableID int64, date time.Time) ([]*domain.Reservation, error) {
	builder := baseSelect().
		Where(squirrel.Eq{"r.table_id": tableID}).
		Where(squirrel.Eq{"r.date": domain.DateOnly(date)}).
		Where(squirrel.NotEq{"r.status": domain.StatusCanceled}).
		OrderBy("r.time ASC")

	return r.query(ctx, "ActiveForTableAndDate", builder)
}

// ActiveForDate возвращает неотмененные брони всех столов на дату
func (r *Repository) ActiveForDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	builder := baseSelect().
		Where(squirrel.Eq{"r.date": domain.DateOnly(date)}).
		Where(squirrel.NotEq{"r.status": domain.StatusCanceled}).
		OrderBy("r.table_id ASC", "r.time ASC")

	return r.query(ctx, "ActiveForDate", builder)
}

// UpdateStatus меняет статус и флаг активности брони
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, isActive bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("is_active", isActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, "UpdateStatus", query, args)
}

// Update сохраняет изменяемые поля брони (стол, дата, время, гости, контакты)
func (r *Repository) Update(ctx context.Context, reservation *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("table_id", reservation.TableID).
		Set("name", reservation.Name).
		Set("email", reservation.Email).
		Set("phone", reservation.Phone).
		Set("date", domain.DateOnly(reservation.Date)).
		Set("time", reservation.Time).
		Set("guests", reservation.Guests).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": reservation.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	err = r.execAffecting(ctx, executor, "Update", query, args)
	if pgerrors.IsForeignKeyViolation(err) {
		return ErrTableNotFound
	}
	return err
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, "Delete", query, args)
}

// ExpirePast снимает флаг is_active с броней, слот которых закончился к моменту now.
// now передается как локальное время ресторана без часового пояса
func (r *Repository) ExpirePast(ctx context.Context, now time.Time, slot time.Duration) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.NotEq{"status": domain.StatusCanceled}).
		Where(squirrel.Expr("(date + time) + (? * INTERVAL '1 minute') <= ?::timestamp",
			int(slot.Minutes()), now.Format("2006-01-02 15:04:05"))).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpirePast - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpirePast - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpirePast - get rows affected: %w", ErrExecQuery, err)
	}

	return affected, nil
}

func (r *Repository) query(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %w", ErrScanRow, op, err)
		}
		reservations = append(reservations, reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return reservations, nil
}

func (r *Repository) execAffecting(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("reservations r").
		Join("tables t ON t.id = r.table_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	err := row.Scan(
		&reservation.ID,
		&reservation.TableID,
		&reservation.OwnerID,
		&reservation.Name,
		&reservation.Email,
		&reservation.Phone,
		&reservation.Date,
		&reservation.Time,
		&reservation.Guests,
		&reservation.IsActive,
		&reservation.Status,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
		&reservation.TableNumber,
	)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}
