package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	userRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/user"
	reservationModels "github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
	"github.com/m04kA/SMC-RestaurantService/internal/service/users/models"
	"github.com/m04kA/SMC-RestaurantService/pkg/auth"
)

// Service сервис пользователей: регистрация, вход, профиль, администрирование
type Service struct {
	userRepo        UserRepository
	reservationRepo ReservationRepository
	tokens          TokenIssuer
	mailer          Mailer
	bcryptCost      int
	logger          Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(
	userRepo UserRepository,
	reservationRepo ReservationRepository,
	tokens TokenIssuer,
	mailer Mailer,
	bcryptCost int,
	logger Logger,
) *Service {
	return &Service{
		userRepo:        userRepo,
		reservationRepo: reservationRepo,
		tokens:          tokens,
		mailer:          mailer,
		bcryptCost:      bcryptCost,
		logger:          logger,
	}
}

// Register создает неактивного пользователя и отправляет письмо с подтверждением
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	s.logger.Info("Register: registering user email=%s, username=%s", req.Email, req.Username)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %w", ErrInternal, err)
	}

	token := uuid.NewString()
	created, err := s.userRepo.Create(ctx, &domain.User{
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		Username:          strings.TrimSpace(req.Username),
		FirstName:         strings.TrimSpace(req.FirstName),
		PhoneNumber:       req.PhoneNumber,
		Country:           req.Country,
		PasswordHash:      hash,
		ConfirmationToken: &token,
	})
	if err != nil {
		return nil, s.mapError("Register", err)
	}

	s.mailer.EmailConfirmation(ctx, created.Email, token)

	s.logger.Info("Register: successfully registered user id=%d", created.ID)
	return models.FromDomainUser(created), nil
}

// CreateStaff создает активного пользователя-сотрудника (команда create-admin)
func (s *Service) CreateStaff(ctx context.Context, email, username, password string) (*models.UserResponse, error) {
	req := &models.RegisterRequest{
		Email:           email,
		Username:        username,
		Password:        password,
		PasswordConfirm: password,
		FirstName:       username,
	}
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateStaff - hash password: %w", ErrInternal, err)
	}

	created, err := s.userRepo.Create(ctx, &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Username:     strings.TrimSpace(username),
		FirstName:    strings.TrimSpace(username),
		PasswordHash: hash,
		IsActive:     true,
		IsStaff:      true,
	})
	if err != nil {
		return nil, s.mapError("CreateStaff", err)
	}

	s.logger.Info("CreateStaff: created staff user id=%d", created.ID)
	return models.FromDomainUser(created), nil
}

// ConfirmEmail активирует пользователя по токену из письма
func (s *Service) ConfirmEmail(ctx context.Context, token string) error {
	if _, err := uuid.Parse(token); err != nil {
		s.logger.Warn("ConfirmEmail: malformed token")
		return ErrInvalidConfirmationToken
	}

	user, err := s.userRepo.GetByConfirmationToken(ctx, token)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("ConfirmEmail: unknown token")
			return ErrInvalidConfirmationToken
		}
		return s.mapError("ConfirmEmail", err)
	}

	if user.IsActive {
		return nil
	}

	if err := s.userRepo.Activate(ctx, user.ID); err != nil {
		return s.mapError("ConfirmEmail", err)
	}

	s.logger.Info("ConfirmEmail: user id=%d activated", user.ID)
	return nil
}

// Login проверяет пароль и выдает access-токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		return nil, s.mapError("Login", err)
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}
	if user.IsBlocked {
		s.logger.Warn("Login: user id=%d is blocked", user.ID)
		return nil, ErrBlocked
	}
	if !user.IsActive {
		s.logger.Warn("Login: user id=%d has not confirmed email", user.ID)
		return nil, ErrNotActivated
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.IsStaff)
	if err != nil {
		s.logger.Error("Login: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: Login - issue token: %w", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *models.FromDomainUser(user),
	}, nil
}

// ResetPassword задает случайный пароль и отправляет его на почту.
// Для неизвестного e-mail ничего не происходит, ответ одинаковый
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Info("ResetPassword: unknown email=%s, skipping", email)
			return nil
		}
		return s.mapError("ResetPassword", err)
	}

	password, err := randomPassword()
	if err != nil {
		return fmt.Errorf("%w: ResetPassword - generate password: %w", ErrInternal, err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("%w: ResetPassword - hash password: %w", ErrInternal, err)
	}

	if err := s.userRepo.SetPassword(ctx, user.ID, hash); err != nil {
		return s.mapError("ResetPassword", err)
	}

	s.mailer.PasswordReset(ctx, user.Email, password)
	s.logger.Info("ResetPassword: password reset for user id=%d", user.ID)
	return nil
}

// Profile данные пользователя и его брони. Доступно самому пользователю и сотрудникам
func (s *Service) Profile(ctx context.Context, id, callerID int64, isStaff bool) (*models.ProfileResponse, error) {
	if !isStaff && id != callerID {
		s.logger.Warn("Profile: user=%d has no access to profile id=%d", callerID, id)
		return nil, ErrAccessDenied
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("Profile", err)
	}

	reservations, err := s.reservationRepo.List(ctx, domain.ReservationsFilter{OwnerID: &id, IncludeCanceled: true})
	if err != nil {
		s.logger.Error("Profile: failed to list reservations for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Profile - list reservations: %w", ErrInternal, err)
	}

	return &models.ProfileResponse{
		User:         *models.FromDomainUser(user),
		Reservations: reservationModels.FromDomainReservationList(reservations).Reservations,
	}, nil
}

// Update меняет поля профиля. Доступно самому пользователю и сотрудникам
func (s *Service) Update(ctx context.Context, id, callerID int64, isStaff bool, req *models.UpdateRequest) (*models.UserResponse, error) {
	if !isStaff && id != callerID {
		s.logger.Warn("Update: user=%d has no access to profile id=%d", callerID, id)
		return nil, ErrAccessDenied
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("Update", err)
	}

	if req.Username != nil {
		if err := validateName("username", *req.Username); err != nil {
			return nil, err
		}
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.FirstName != nil {
		if err := validateName("first name", *req.FirstName); err != nil {
			return nil, err
		}
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.PhoneNumber != nil {
		if err := validatePhone(req.PhoneNumber); err != nil {
			return nil, err
		}
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Country != nil {
		user.Country = req.Country
	}
	if req.Avatar != nil {
		if *req.Avatar != "" && !domain.HasImageExtension(*req.Avatar) {
			return nil, fmt.Errorf("%w: avatar must be a png or jpg image", ErrInvalidInput)
		}
		user.Avatar = req.Avatar
	}

	updated, err := s.userRepo.UpdateProfile(ctx, user)
	if err != nil {
		return nil, s.mapError("Update", err)
	}

	s.logger.Info("Update: user id=%d updated", id)
	return models.FromDomainUser(updated), nil
}

// List список пользователей
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, s.mapError("List", err)
	}
	return models.FromDomainUserList(users), nil
}

// SetBlocked блокирует или разблокирует пользователя. Заблокировать себя нельзя
func (s *Service) SetBlocked(ctx context.Context, id, callerID int64, blocked bool) error {
	if blocked && id == callerID {
		return fmt.Errorf("%w: can not block yourself", ErrInvalidInput)
	}

	if err := s.userRepo.SetBlocked(ctx, id, blocked); err != nil {
		return s.mapError("SetBlocked", err)
	}

	s.logger.Info("SetBlocked: user id=%d blocked=%t by user=%d", id, blocked, callerID)
	return nil
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, userRepo.ErrUserNotFound):
		s.logger.Warn("%s: user not found", op)
		return ErrUserNotFound
	case errors.Is(err, userRepo.ErrEmailTaken):
		s.logger.Warn("%s: %v", op, err)
		return ErrEmailTaken
	case errors.Is(err, userRepo.ErrUsernameTaken):
		s.logger.Warn("%s: %v", op, err)
		return ErrUsernameTaken
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
}
