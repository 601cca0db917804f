package get_user_reservations

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
)

type ReservationService interface {
	ListByOwner(ctx context.Context, userID int64) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
