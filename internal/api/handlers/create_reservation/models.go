package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	createReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

var (
	errInvalidDate = fmt.Errorf("invalid date")
	errInvalidTime = fmt.Errorf("invalid time")
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	TableID int64  `json:"tableId" validate:"required,gt=0"`
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,numeric,max=15"`
	Date    string `json:"date" validate:"required"` // "2025-06-01"
	Time    string `json:"time" validate:"required"` // "18:00"
	Guests  int    `json:"guests" validate:"required,gt=0"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(ownerID *int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	start, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createReservation.Request{
		TableID: r.TableID,
		OwnerID: ownerID,
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Date:    date,
		Time:    start,
		Guests:  r.Guests,
	}, nil
}
