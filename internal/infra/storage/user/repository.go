package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/pgerrors"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"email",
	"username",
	"first_name",
	"phone_number",
	"country",
	"avatar",
	"password_hash",
	"is_active",
	"is_blocked",
	"is_staff",
	"confirmation_token",
	"created_at",
	"updated_at",
}

// Repository репозиторий пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пользователя
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"email",
			"username",
			"first_name",
			"phone_number",
			"country",
			"avatar",
			"password_hash",
			"is_active",
			"is_blocked",
			"is_staff",
			"confirmation_token",
		).
		Values(
			user.Email,
			user.Username,
			user.FirstName,
			user.PhoneNumber,
			user.Country,
			user.Avatar,
			user.PasswordHash,
			user.IsActive,
			user.IsBlocked,
			user.IsStaff,
			user.ConfirmationToken,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if uniqueErr := uniqueViolation(err); uniqueErr != nil {
			return nil, uniqueErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return user, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getBy(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByEmail получает пользователя по e-mail (без учета регистра)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "GetByEmail", squirrel.Expr("LOWER(email) = LOWER(?)", email))
}

// GetByConfirmationToken получает пользователя по токену подтверждения e-mail
func (r *Repository) GetByConfirmationToken(ctx context.Context, token string) (*domain.User, error) {
	return r.getBy(ctx, "GetByConfirmationToken", squirrel.Eq{"confirmation_token": token})
}

func (r *Repository) getBy(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	user, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %w", ErrScanRow, op, err)
	}

	return user, nil
}

// List возвращает всех пользователей
func (r *Repository) List(ctx context.Context) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("users").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan user: %w", ErrScanRow, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return users, nil
}

// UpdateProfile сохраняет редактируемые поля профиля
func (r *Repository) UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("username", user.Username).
		Set("first_name", user.FirstName).
		Set("phone_number", user.PhoneNumber).
		Set("country", user.Country).
		Set("avatar", user.Avatar).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateProfile - build update query: %w", ErrBuildQuery, err)
	}

	updated, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		if uniqueErr := uniqueViolation(err); uniqueErr != nil {
			return nil, uniqueErr
		}
		return nil, fmt.Errorf("%w: UpdateProfile - execute update: %w", ErrExecQuery, err)
	}

	return updated, nil
}

// Activate подтверждает e-mail пользователя и сбрасывает токен подтверждения
func (r *Repository) Activate(ctx context.Context, id int64) error {
	return r.update(ctx, "Activate", id, map[string]interface{}{
		"is_active":          true,
		"confirmation_token": nil,
	})
}

// SetPassword сохраняет новый хеш пароля
func (r *Repository) SetPassword(ctx context.Context, id int64, passwordHash string) error {
	return r.update(ctx, "SetPassword", id, map[string]interface{}{
		"password_hash": passwordHash,
	})
}

// SetBlocked блокирует или разблокирует пользователя
func (r *Repository) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	return r.update(ctx, "SetBlocked", id, map[string]interface{}{
		"is_blocked": blocked,
	})
}

func (r *Repository) update(ctx context.Context, op string, id int64, fields map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		SetMap(fields).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %w", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func uniqueViolation(err error) error {
	if !pgerrors.IsUniqueViolation(err) {
		return nil
	}
	if strings.Contains(pgerrors.Constraint(err), "username") {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.FirstName,
		&user.PhoneNumber,
		&user.Country,
		&user.Avatar,
		&user.PasswordHash,
		&user.IsActive,
		&user.IsBlocked,
		&user.IsStaff,
		&user.ConfirmationToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
