package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrArrivalInPast возвращается, когда время заезда в прошлом
	// (с допуском в десять минут на расхождение часов)
	ErrArrivalInPast = errors.New("create_reservation: arrival time is in the past")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("create_reservation: hotel not found")

	// ErrRoomNotReservable возвращается, когда номер неактивен или выведен
	// из оборота (maintenance, out_of_service)
	ErrRoomNotReservable = errors.New("create_reservation: room does not accept reservations")

	// ErrHourlyNotAllowed возвращается при попытке почасового бронирования
	// в номере, который его не разрешает
	ErrHourlyNotAllowed = errors.New("create_reservation: room does not allow hourly booking")

	// ErrInvalidDuration возвращается при некорректной спецификации длительности
	ErrInvalidDuration = errors.New("create_reservation: invalid stay duration")

	// ErrOccupancyExceeded возвращается, когда гостей больше вместимости номера
	ErrOccupancyExceeded = errors.New("create_reservation: guest count exceeds room capacity")

	// ErrUnresolvablePrice возвращается, когда стоимость вычислить невозможно
	ErrUnresolvablePrice = errors.New("create_reservation: unable to resolve price")

	// ErrRoomNotAvailable возвращается, когда интервал пересекается с активной бронью
	ErrRoomNotAvailable = errors.New("create_reservation: room is not available on this interval")

	// ErrAvailabilityCheckFailed возвращается, когда проверку доступности
	// выполнить не удалось. Бронь в этом случае не создаётся.
	ErrAvailabilityCheckFailed = errors.New("create_reservation: availability check failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
