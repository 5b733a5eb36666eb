package duration

import "errors"

var (
	// ErrInvalidArrival возвращается, когда момент заезда отсутствует или не парсится
	ErrInvalidArrival = errors.New("duration: invalid arrival instant")

	// ErrInvalidDuration возвращается при некорректной спецификации длительности
	// (неизвестный вид, количество ночей < 1, отсутствующая или нулевая запись каталога)
	ErrInvalidDuration = errors.New("duration: invalid duration specification")

	// ErrNonPositiveInterval возвращается, когда вычисленный выезд <= заезда.
	// Защитная проверка: молча исправлять интервал нельзя
	ErrNonPositiveInterval = errors.New("duration: departure must be after arrival")
)
