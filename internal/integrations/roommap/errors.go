package roommap

import "errors"

var (
	// ErrUnavailable возвращается, когда сервис шахматки недоступен
	ErrUnavailable = errors.New("roommap: service unavailable")

	// ErrInvalidResponse возвращается при неожиданном ответе шахматки
	ErrInvalidResponse = errors.New("roommap: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("roommap: internal error")
)
