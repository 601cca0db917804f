package content

import "errors"

var (
	// ErrNotFound возвращается, когда запись не найдена
	ErrNotFound = errors.New("content: record not found")

	// ErrBannedWord возвращается, когда текст содержит запрещенное слово
	ErrBannedWord = errors.New("content: text contains a banned word")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("content: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("content: internal error")
)
