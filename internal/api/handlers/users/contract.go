package users

import (
	"context"

	"github.com/m04kA/SMC-RestaurantService/internal/service/users/models"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
	ConfirmEmail(ctx context.Context, token string) error
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ResetPassword(ctx context.Context, email string) error
	Profile(ctx context.Context, id, callerID int64, isStaff bool) (*models.ProfileResponse, error)
	Update(ctx context.Context, id, callerID int64, isStaff bool, req *models.UpdateRequest) (*models.UserResponse, error)
	List(ctx context.Context) (*models.UserListResponse, error)
	SetBlocked(ctx context.Context, id, callerID int64, blocked bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
