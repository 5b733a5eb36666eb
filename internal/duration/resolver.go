// Package duration превращает спецификацию длительности в конкретный
// интервал [заезд, выезд).
package duration

import (
	"fmt"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// Resolve вычисляет интервал проживания по спецификации длительности.
//
// Ручной режим (manual_nights): выезд = заезд + N календарных дней, после чего
// время выезда принудительно выставляется на checkout-час отеля (секунды и
// миллисекунды обнуляются). Checkout — это фиксированная отметка на часах, а не
// смещение по затраченному времени: при позднем заезде фактическая длительность
// "одной ночи" короче суток, и это контракт, а не ошибка.
//
// Предопределённый режим (predefined_stay): выезд = заезд + minutes записи
// каталога, без привязки к часам.
func Resolve(
	arrival time.Time,
	spec domain.DurationSpec,
	checkoutHour types.TimeString,
	catalog map[int64]*domain.StayDuration,
) (domain.ResolvedStay, error) {
	if arrival.IsZero() {
		return domain.ResolvedStay{}, ErrInvalidArrival
	}

	var (
		departure time.Time
		magnitude int
	)

	switch spec.Kind {
	case domain.DurationManualNights:
		if spec.Nights < 1 {
			return domain.ResolvedStay{}, fmt.Errorf("%w: nights must be at least 1", ErrInvalidDuration)
		}
		magnitude = spec.Nights

		hh, mm, err := checkoutHour.HourMinute()
		if err != nil {
			// Некорректная конфигурация отеля не должна ронять бронирование
			hh, mm, _ = types.TimeString(domain.DefaultCheckoutHour).HourMinute()
		}

		d := arrival.AddDate(0, 0, spec.Nights)
		departure = time.Date(d.Year(), d.Month(), d.Day(), hh, mm, 0, 0, arrival.Location())

	case domain.DurationPredefinedStay:
		entry, ok := catalog[spec.StayDurationID]
		if !ok || entry.Minutes <= 0 {
			return domain.ResolvedStay{}, fmt.Errorf("%w: unknown stay duration id=%d", ErrInvalidDuration, spec.StayDurationID)
		}
		magnitude = entry.Minutes
		departure = arrival.Add(time.Duration(entry.Minutes) * time.Minute)

	default:
		return domain.ResolvedStay{}, fmt.Errorf("%w: unknown duration kind %q", ErrInvalidDuration, spec.Kind)
	}

	if !departure.After(arrival) {
		return domain.ResolvedStay{}, ErrNonPositiveInterval
	}

	return domain.ResolvedStay{
		StartAt:   arrival,
		EndAt:     departure,
		Kind:      spec.Kind,
		Magnitude: magnitude,
	}, nil
}

// IsOvernightStay классифицирует запись каталога как "ночной эквивалент"
// (22-26 часов). Такие записи разрешены в номерах без почасового бронирования.
func IsOvernightStay(stayDurationID int64, catalog map[int64]*domain.StayDuration) bool {
	entry, ok := catalog[stayDurationID]
	return ok && entry.IsNightEquivalent()
}
