package reservations

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/usecase/cancel_reservation"
	"github.com/m04kA/SMC-RestaurantService/internal/usecase/confirm_reservation"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// ConfirmUseCase подтверждение брони
type ConfirmUseCase interface {
	Execute(ctx context.Context, req *confirm_reservation.Request) (*domain.Reservation, error)
}

// CancelUseCase отмена брони
type CancelUseCase interface {
	Execute(ctx context.Context, req *cancel_reservation.Request) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
