package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	TableID int64
	OwnerID *int64 // ID авторизованного пользователя, nil для анонимной брони
	Name    string
	Email   string
	Phone   string
	Date    time.Time        // дата брони (без времени)
	Time    types.TimeString // время начала, "HH:MM"
	Guests  int
}
