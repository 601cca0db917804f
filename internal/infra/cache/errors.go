package cache

import "errors"

var (
	// ErrConnect возвращается, когда Redis недоступен при старте
	ErrConnect = errors.New("cache: failed to connect to redis")

	// ErrEncode возвращается при ошибке сериализации значения
	ErrEncode = errors.New("cache: failed to encode value")

	// ErrDecode возвращается при ошибке десериализации значения
	ErrDecode = errors.New("cache: failed to decode value")

	// ErrBackend возвращается при ошибке выполнения команды Redis
	ErrBackend = errors.New("cache: redis command failed")
)
