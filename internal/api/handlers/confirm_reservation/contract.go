package confirm_reservation

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	confirmReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/confirm_reservation"
)

type ConfirmReservationUseCase interface {
	Execute(ctx context.Context, req *confirmReservation.Request) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
