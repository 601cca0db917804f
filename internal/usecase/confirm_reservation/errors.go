package confirm_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("confirm_reservation: reservation not found")

	// ErrTableNotFound возвращается, когда стол брони не найден
	ErrTableNotFound = errors.New("confirm_reservation: table not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец брони и не сотрудник
	ErrAccessDenied = errors.New("confirm_reservation: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_reservation: internal error")
)
