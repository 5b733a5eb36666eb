package availability

import "errors"

var (
	// ErrConflict возвращается, когда интервал пересекается с активной бронью
	ErrConflict = errors.New("availability: interval conflicts with an active reservation")

	// ErrCheckFailed возвращается, когда проверку пересечения выполнить не удалось.
	// Проверка fail-closed: неизвестность трактуется как конфликт.
	ErrCheckFailed = errors.New("availability: overlap check failed")
)
