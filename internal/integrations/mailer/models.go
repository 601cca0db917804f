package mailer

import "time"

// Config параметры SMTP
type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	Timeout  time.Duration
	// BaseURL адрес сервиса для ссылок в письмах
	BaseURL string
}

// Message письмо
type Message struct {
	To      string
	Subject string
	Body    string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
