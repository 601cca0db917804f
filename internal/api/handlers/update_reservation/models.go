package update_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	updateReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// UpdateReservationRequest HTTP request model, отсутствующие поля не меняются
type UpdateReservationRequest struct {
	TableID *int64  `json:"tableId,omitempty" validate:"omitempty,gt=0"`
	Name    *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,numeric,max=15"`
	Date    *string `json:"date,omitempty"`
	Time    *string `json:"time,omitempty"`
	Guests  *int    `json:"guests,omitempty" validate:"omitempty,gt=0"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID, userID int64, isStaff bool) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ReservationID: reservationID,
		UserID:        userID,
		IsStaff:       isStaff,
		TableID:       r.TableID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Guests:        r.Guests,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", *r.Date, err)
		}
		req.Date = &date
	}

	if r.Time != nil {
		start, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q: %w", *r.Time, err)
		}
		req.Time = &start
	}

	return req, nil
}
