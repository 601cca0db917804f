package change_reservation_status

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
)

type ReservationService interface {
	ChangeStatus(ctx context.Context, id int64, req *models.ChangeStatusRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
