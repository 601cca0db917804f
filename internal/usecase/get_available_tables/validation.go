package get_available_tables

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time: %w", ErrInvalidInput, err)
		}
	}

	return nil
}

// validateHours проверяет часы работы
func validateHours(h Hours) error {
	if err := h.Open.Validate(); err != nil {
		return fmt.Errorf("invalid opening time: %w", err)
	}
	if err := h.Close.Validate(); err != nil {
		return fmt.Errorf("invalid closing time: %w", err)
	}
	if h.Step <= 0 {
		return fmt.Errorf("step must be positive")
	}
	if h.Open.Minutes() >= h.Close.Minutes() {
		return fmt.Errorf("opening time %s must be before closing time %s", h.Open, h.Close)
	}
	return nil
}
