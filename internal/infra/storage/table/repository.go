package table

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/pgerrors"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
)

var columns = []string{"id", "number", "capacity", "status", "created_at", "updated_at"}

// Repository репозиторий столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает стол. Новый стол всегда available
func (r *Repository) Create(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tables").
		Columns("number", "capacity", "status").
		Values(table.Number, table.Capacity, domain.TableAvailable).
		Suffix("RETURNING id, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&table.ID, &table.Status, &table.CreatedAt, &table.UpdatedAt)
	if pgerrors.IsUniqueViolation(err) {
		return nil, fmt.Errorf("%w: %s", ErrTableNumberTaken, table.Number)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return table, nil
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	return r.getByID(ctx, "GetByID", id, false)
}

// LockByID получает стол по ID с блокировкой строки (SELECT ... FOR UPDATE).
// Вызывать внутри транзакции: конкурентные брони одного стола выстраиваются в очередь на этой блокировке
func (r *Repository) LockByID(ctx context.Context, id int64) (*domain.Table, error) {
	return r.getByID(ctx, "LockByID", id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, op string, id int64, forUpdate bool) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("tables").
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	table, err := scanTable(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan table: %w", ErrScanRow, op, err)
	}

	return table, nil
}

// List возвращает все столы, упорядоченные по номеру
func (r *Repository) List(ctx context.Context) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("tables").
		OrderBy("number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan table: %w", ErrScanRow, err)
		}
		tables = append(tables, table)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return tables, nil
}

// Update обновляет номер и вместимость стола. Статус через CRUD не меняется
func (r *Repository) Update(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tables").
		Set("number", table.Number).
		Set("capacity", table.Capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": table.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	updated, err := scanTable(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	if pgerrors.IsUniqueViolation(err) {
		return nil, fmt.Errorf("%w: %s", ErrTableNumberTaken, table.Number)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return updated, nil
}

// UpdateStatus меняет информационный статус стола
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.TableStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tables").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, "UpdateStatus", query, args)
}

// ReleaseIdle возвращает в available занятые столы, у которых на дату нет активных неотмененных броней
func (r *Repository) ReleaseIdle(ctx context.Context, date time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tables").
		Set("status", domain.TableAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.TableReserved}).
		Where(squirrel.Expr(
			"NOT EXISTS (SELECT 1 FROM reservations r WHERE r.table_id = tables.id AND r.date = ? AND r.is_active AND r.status <> ?)",
			domain.DateOnly(date), domain.StatusCanceled,
		)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReleaseIdle - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ReleaseIdle - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ReleaseIdle - get rows affected: %w", ErrExecQuery, err)
	}

	return affected, nil
}

// Delete удаляет стол (брони стола удаляются каскадно)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, "Delete", query, args)
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
		return ErrTableNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTable(row rowScanner) (*domain.Table, error) {
	var table domain.Table
	if err := row.Scan(&table.ID, &table.Number, &table.Capacity, &table.Status, &table.CreatedAt, &table.UpdatedAt); err != nil {
		return nil, err
	}
	return &table, nil
}
