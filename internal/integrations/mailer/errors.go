package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidAddress возвращается при некорректном адресе отправителя или получателя
	ErrInvalidAddress = errors.New("mailer client: invalid address")

	// ErrSend возвращается, когда SMTP сервер не принял письмо
	ErrSend = errors.New("mailer client: failed to send message")
)
