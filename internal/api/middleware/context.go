package middleware

import "context"

type userKey struct{}

type identity struct {
	userID  int64
	isStaff bool
}

// WithUser кладет пользователя в контекст запроса
func WithUser(ctx context.Context, userID int64, isStaff bool) context.Context {
	return context.WithValue(ctx, userKey{}, identity{userID: userID, isStaff: isStaff})
}

// GetUserID возвращает ID аутентифицированного пользователя
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userKey{}).(identity)
	if !ok {
		return 0, false
	}
	return id.userID, true
}

// IsStaff возвращает true для сотрудника ресторана
func IsStaff(ctx context.Context) bool {
	id, ok := ctx.Value(userKey{}).(identity)
	return ok && id.isStaff
}
