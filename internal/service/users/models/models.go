package models

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	reservationModels "github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
)

// RegisterRequest запрос на регистрацию
type RegisterRequest struct {
	Email           string  `json:"email" validate:"required,email"`
	Username        string  `json:"username" validate:"required,max=50"`
	Password        string  `json:"password" validate:"required,min=8"`
	PasswordConfirm string  `json:"passwordConfirm" validate:"required,eqfield=Password"`
	FirstName       string  `json:"firstName" validate:"required,max=50"`
	PhoneNumber     *string `json:"phoneNumber,omitempty" validate:"omitempty,numeric,max=15"`
	Country         *string `json:"country,omitempty" validate:"omitempty,max=50"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PasswordResetRequest запрос на сброс пароля
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateRequest запрос на изменение профиля. nil поля не меняются
type UpdateRequest struct {
	Username    *string `json:"username,omitempty" validate:"omitempty,min=1,max=50"`
	FirstName   *string `json:"firstName,omitempty" validate:"omitempty,min=1,max=50"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,numeric,max=15"`
	Country     *string `json:"country,omitempty" validate:"omitempty,max=50"`
	Avatar      *string `json:"avatar,omitempty"`
}

// BlockRequest запрос на блокировку пользователя
type BlockRequest struct {
	Blocked bool `json:"blocked"`
}

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	FirstName   string    `json:"firstName"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	Country     *string   `json:"country,omitempty"`
	Avatar      *string   `json:"avatar,omitempty"`
	IsActive    bool      `json:"isActive"`
	IsBlocked   bool      `json:"isBlocked"`
	IsStaff     bool      `json:"isStaff"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LoginResponse ответ с access-токеном
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ProfileResponse профиль с бронями пользователя
type ProfileResponse struct {
	User         UserResponse                            `json:"user"`
	Reservations []reservationModels.ReservationResponse `json:"reservations"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		FirstName:   u.FirstName,
		PhoneNumber: u.PhoneNumber,
		Country:     u.Country,
		Avatar:      u.Avatar,
		IsActive:    u.IsActive,
		IsBlocked:   u.IsBlocked,
		IsStaff:     u.IsStaff,
		CreatedAt:   u.CreatedAt,
	}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) *UserListResponse {
	resp := &UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, *FromDomainUser(u))
	}
	return resp
}
