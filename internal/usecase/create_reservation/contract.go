package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	LockByID(ctx context.Context, id int64) (*domain.Table, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	ActiveForTableAndDate(ctx context.Context, tableID int64, date time.Time) ([]*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправляет уведомление гостю о принятой брони
type Notifier interface {
	ReservationCreated(ctx context.Context, reservation *domain.Reservation)
}

// MetricsRecorder счетчики исходов бронирования
type MetricsRecorder interface {
	RecordReservationCreated()
	RecordReservationRejected(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
