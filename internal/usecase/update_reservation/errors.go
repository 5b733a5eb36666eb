package update_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrNotEditable возвращается, когда бронь уже нельзя редактировать
	ErrNotEditable = errors.New("update_reservation: reservation is not editable")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("update_reservation: room not found")

	// ErrRoomNotReservable возвращается, когда номер не принимает брони
	ErrRoomNotReservable = errors.New("update_reservation: room does not accept reservations")

	// ErrHourlyNotAllowed возвращается при почасовом бронировании в номере,
	// который его не разрешает
	ErrHourlyNotAllowed = errors.New("update_reservation: room does not allow hourly booking")

	// ErrInvalidDuration возвращается при некорректной спецификации длительности
	ErrInvalidDuration = errors.New("update_reservation: invalid stay duration")

	// ErrOccupancyExceeded возвращается, когда гостей больше вместимости номера
	ErrOccupancyExceeded = errors.New("update_reservation: guest count exceeds room capacity")

	// ErrUnresolvablePrice возвращается, когда стоимость вычислить невозможно
	ErrUnresolvablePrice = errors.New("update_reservation: unable to resolve price")

	// ErrRoomNotAvailable возвращается, когда интервал пересекается с чужой активной бронью
	ErrRoomNotAvailable = errors.New("update_reservation: room is not available on this interval")

	// ErrAvailabilityCheckFailed возвращается, когда проверку доступности
	// выполнить не удалось. Изменения в этом случае не сохраняются.
	ErrAvailabilityCheckFailed = errors.New("update_reservation: availability check failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
