package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// Request модель запроса на изменение брони. nil поля не меняются
type Request struct {
	ReservationID int64
	UserID        int64
	IsStaff       bool

	TableID *int64
	Name    *string
	Email   *string
	Phone   *string
	Date    *time.Time
	Time    *types.TimeString
	Guests  *int
}

// changesSlot возвращает true, если меняется стол, дата, время или число гостей
func (r *Request) changesSlot() bool {
	return r.TableID != nil || r.Date != nil || r.Time != nil || r.Guests != nil
}
