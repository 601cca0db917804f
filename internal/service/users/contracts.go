package users

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByConfirmationToken(ctx context.Context, token string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error)
	Activate(ctx context.Context, id int64) error
	SetPassword(ctx context.Context, id int64, passwordHash string) error
	SetBlocked(ctx context.Context, id int64, blocked bool) error
}

// ReservationRepository брони пользователя для профиля
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// TokenIssuer выпускает access-токены
type TokenIssuer interface {
	Issue(userID int64, isStaff bool) (string, time.Time, error)
}

// Mailer письма пользователю. Ошибки отправки не возвращаются
type Mailer interface {
	EmailConfirmation(ctx context.Context, email, token string)
	PasswordReset(ctx context.Context, email, password string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
