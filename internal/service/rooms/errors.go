package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("rooms.service: room not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("rooms.service: internal error")
)
