package update_reservation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/validation"
)

// apply применяет изменения к копии брони и валидирует результат
func apply(req *Request, r domain.Reservation) (*domain.Reservation, error) {
	if req.TableID != nil {
		if *req.TableID <= 0 {
			return nil, fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
		}
		r.TableID = *req.TableID
	}
	if req.Name != nil {
		r.Name = strings.TrimSpace(*req.Name)
		if r.Name == "" || utf8.RuneCountInString(r.Name) > domain.MaxNameLength {
			return nil, fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxNameLength)
		}
	}
	if req.Email != nil {
		r.Email = strings.TrimSpace(*req.Email)
		if err := validation.Email(r.Email); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}
	if req.Phone != nil {
		if !domain.IsDigits(*req.Phone) || len(*req.Phone) > domain.MaxPhoneLength {
			return nil, fmt.Errorf("%w: phone must contain only digits, at most %d", ErrInvalidInput, domain.MaxPhoneLength)
		}
		r.Phone = *req.Phone
	}
	if req.Date != nil {
		if req.Date.IsZero() {
			return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
		}
		r.Date = domain.DateOnly(*req.Date)
	}
	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid time: %w", ErrInvalidInput, err)
		}
		r.Time = *req.Time
	}
	if req.Guests != nil {
		if *req.Guests <= 0 {
			return nil, fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
		}
		r.Guests = *req.Guests
	}
	return &r, nil
}
