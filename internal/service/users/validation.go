package users

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/internal/service/users/models"
	"github.com/m04kA/SMC-RestaurantService/pkg/validation"
)

const maxNameLength = 50

func validateRegister(req *models.RegisterRequest) error {
	if err := validation.Email(req.Email); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if utf8.RuneCountInString(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	if req.Password != req.PasswordConfirm {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}
	if err := validateName("username", req.Username); err != nil {
		return err
	}
	if err := validateName("first name", req.FirstName); err != nil {
		return err
	}
	return validatePhone(req.PhoneNumber)
}

func validateName(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" || utf8.RuneCountInString(value) > maxNameLength {
		return fmt.Errorf("%w: %s must be 1..%d characters", ErrInvalidInput, field, maxNameLength)
	}
	if word, found := domain.FindBannedWord(value); found {
		return fmt.Errorf("%w: %s contains %q", ErrBannedWord, field, word)
	}
	return nil
}

func validatePhone(phone *string) error {
	if phone == nil || *phone == "" {
		return nil
	}
	if !domain.IsDigits(*phone) || len(*phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must contain only digits, at most %d", ErrInvalidInput, domain.MaxPhoneLength)
	}
	return nil
}

// randomPassword случайный восьмизначный пароль для сброса
func randomPassword() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(domain.ResetPasswordMax-domain.ResetPasswordMin+1))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+domain.ResetPasswordMin), nil
}
