package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
)

//go:embed *.sql
var files embed.FS

// ErrMigration возвращается, когда миграцию не удалось применить
var ErrMigration = errors.New("migrations: failed to apply migration")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Versions возвращает имена встроенных миграций в порядке применения
func Versions() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Up применяет все еще не примененные миграции
func Up(ctx context.Context, db dbmetrics.DBExecutor, logger Logger) (int, error) {
	names, err := Versions()
	if err != nil {
		return 0, fmt.Errorf("%w: read embedded files: %w", ErrMigration, err)
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)`); err != nil {
		return 0, fmt.Errorf("%w: create schema_migrations: %w", ErrMigration, err)
	}

	applied := 0
	for _, name := range names {
		var exists bool
		err := db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, name).Scan(&exists)
		if err != nil {
			return applied, fmt.Errorf("%w: check %s: %w", ErrMigration, name, err)
		}
		if exists {
			continue
		}

		body, err := files.ReadFile(name)
		if err != nil {
			return applied, fmt.Errorf("%w: read %s: %w", ErrMigration, name, err)
		}
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return applied, fmt.Errorf("%w: apply %s: %w", ErrMigration, name, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
			return applied, fmt.Errorf("%w: record %s: %w", ErrMigration, name, err)
		}

		if logger != nil {
			logger.Info("Migrations: applied %s", name)
		}
		applied++
	}

	return applied, nil
}
