package tables

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	List(ctx context.Context) ([]*domain.Table, error)
	Update(ctx context.Context, table *domain.Table) (*domain.Table, error)
	Delete(ctx context.Context, id int64) error
}

// CacheInvalidator сбрасывает закэшированные агрегаты
type CacheInvalidator interface {
	Delete(ctx context.Context, keys ...string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
