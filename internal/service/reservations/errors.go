package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrCannotConfirm возвращается, когда бронь нельзя подтвердить
	ErrCannotConfirm = errors.New("reservation cannot be confirmed")

	// ErrCannotCancel возвращается, когда бронь нельзя отменить
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTransitionDelegated возвращается при попытке перевести бронь в
	// checked_in или checked_out: заезд и выезд оформляются через шахматку
	ErrTransitionDelegated = errors.New("transition is handled by the room map service")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
