package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidEmail некорректный адрес почты
var ErrInvalidEmail = errors.New("validation: invalid email")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct проверяет структуру по тегам validate и возвращает первое нарушение
func Struct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("field %s failed on %s", fe.Field(), fe.Tag())
		}
		return err
	}
	return nil
}

// Email проверяет одиночный адрес почты
func Email(email string) error {
	if err := validate.Var(strings.TrimSpace(email), "required,email"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}
