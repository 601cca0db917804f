package domain

import "time"

// User учетная запись пользователя
type User struct {
	ID                int64
	Email             string
	Username          string
	FirstName         string
	PhoneNumber       *string
	Country           *string
	Avatar            *string
	PasswordHash      string
	IsActive          bool // подтвержден ли e-mail
	IsBlocked         bool
	IsStaff           bool
	ConfirmationToken *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CanLogin возвращает true, если пользователь подтвердил e-mail и не заблокирован
func (u *User) CanLogin() bool {
	return u.IsActive && !u.IsBlocked
}
