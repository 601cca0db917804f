package tables

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("tables: table not found")

	// ErrTableNumberTaken возвращается, когда номер стола занят
	ErrTableNumberTaken = errors.New("tables: table number already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("tables: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tables: internal error")
)
