package create_reservation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/validation"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if err := validation.Email(req.Email); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if !domain.IsDigits(req.Phone) || len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must contain only digits, at most %d", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time: %w", ErrInvalidInput, err)
	}

	return nil
}
