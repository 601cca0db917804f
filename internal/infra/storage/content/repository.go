package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
)

// Repository репозиторий контента ресторана: профиль, услуги, сотрудники, меню, обращения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория контента
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func getOne[T any](ctx context.Context, db DBExecutor, op string, builder squirrel.Sqlizer, scan func(rowScanner) (*T, error)) (*T, error) {
	executor := dbmetrics.GetExecutor(ctx, db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build query: %w", ErrBuildQuery, op, err)
	}

	item, err := scan(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, op)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
	}

	return item, nil
}

func list[T any](ctx context.Context, db DBExecutor, op string, builder squirrel.Sqlizer, scan func(rowScanner) (*T, error)) ([]*T, error) {
	executor := dbmetrics.GetExecutor(ctx, db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return items, nil
}

func (r *Repository) deleteByID(ctx context.Context, table, op string, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build delete query: %w", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute delete: %w", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	}

	return nil
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
