package pricing

import "errors"

var (
	// ErrUnresolvablePrice возвращается, когда ни одно правило ценообразования
	// не применимо (нет пакетной цены и нет почасовой ставки)
	ErrUnresolvablePrice = errors.New("pricing: no pricing rule applies to this stay")

	// ErrOccupancyExceeded возвращается, когда гостей больше максимальной
	// вместимости номера
	ErrOccupancyExceeded = errors.New("pricing: guest count exceeds room capacity")

	// ErrInvalidGuestCount возвращается при количестве гостей < 1
	ErrInvalidGuestCount = errors.New("pricing: guest count must be at least 1")
)
