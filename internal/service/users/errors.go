package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users: user not found")

	// ErrEmailTaken возвращается, когда e-mail уже зарегистрирован
	ErrEmailTaken = errors.New("users: email already registered")

	// ErrUsernameTaken возвращается, когда имя пользователя занято
	ErrUsernameTaken = errors.New("users: username already taken")

	// ErrInvalidCredentials возвращается при неверной паре e-mail и пароль
	ErrInvalidCredentials = errors.New("users: invalid email or password")

	// ErrNotActivated возвращается, когда e-mail не подтвержден
	ErrNotActivated = errors.New("users: email is not confirmed")

	// ErrBlocked возвращается для заблокированного пользователя
	ErrBlocked = errors.New("users: user is blocked")

	// ErrInvalidConfirmationToken возвращается для неизвестного токена подтверждения
	ErrInvalidConfirmationToken = errors.New("users: invalid confirmation token")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("users: access denied")

	// ErrBannedWord возвращается, когда имя содержит запрещенное слово
	ErrBannedWord = errors.New("users: name contains a banned word")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("users: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users: internal error")
)
