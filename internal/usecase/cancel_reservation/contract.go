package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	LockByID(ctx context.Context, id int64) (*domain.Table, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TableStatus) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, isActive bool) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправляет уведомление гостю о смене статуса
type Notifier interface {
	ReservationStatusChanged(ctx context.Context, reservation *domain.Reservation)
}

// MetricsRecorder счетчик переходов статусов
type MetricsRecorder interface {
	RecordStatusTransition(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
