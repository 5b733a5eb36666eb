package stays

import "errors"

var (
	// ErrStayDurationNotFound возвращается, когда запись каталога не найдена
	ErrStayDurationNotFound = errors.New("stays.service: stay duration not found")

	// ErrInvalidInput возвращается при некорректных данных записи каталога
	ErrInvalidInput = errors.New("stays.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("stays.service: internal error")
)
