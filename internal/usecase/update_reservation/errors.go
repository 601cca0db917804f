package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrTableNotFound возвращается, когда новый стол не найден
	ErrTableNotFound = errors.New("update_reservation: table not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец брони и не сотрудник
	ErrAccessDenied = errors.New("update_reservation: access denied")

	// ErrInvalidInput возвращается при невалидных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
