// Package pricing вычисляет стоимость разрешённого интервала проживания.
package pricing

import (
	"fmt"
	"math"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// Quote считает стоимость проживания: базовую сумму и доплату за
// дополнительных гостей. Обе составляющие сохраняются на брони раздельно.
//
// Базовая сумма:
//   - manual_nights: basePrice * nights;
//   - predefined_stay: пакетная цена записи каталога, если она задана; иначе
//     почасовой фолбэк hourlyBasePrice * minutes/60; если неприменимо ни то,
//     ни другое — ErrUnresolvablePrice.
//
// Доплата: (guests - baseOccupancy) * extraGuestPrice * multiplier, где
// multiplier = nights в ручном режиме, 1 для предопределённого времени и
// round(minutes/1440) (минимум 1) для ночного эквивалента: ночной пакет
// тарифицируется за каждую ночь, почасовой — один раз.
func Quote(
	room domain.RoomPricing,
	guestCount int,
	resolved domain.ResolvedStay,
	stayEntry *domain.StayDuration,
) (domain.Quote, error) {
	if guestCount < 1 {
		return domain.Quote{}, ErrInvalidGuestCount
	}

	var base float64
	switch resolved.Kind {
	case domain.DurationManualNights:
		base = room.BasePrice * float64(resolved.Magnitude)

	case domain.DurationPredefinedStay:
		minutes := resolved.Magnitude
		switch {
		case stayEntry != nil && stayEntry.HasPackagePrice():
			base = *stayEntry.Price
		case room.HourlyBasePrice > 0 && minutes > 0:
			base = room.HourlyBasePrice * float64(minutes) / 60
		default:
			return domain.Quote{}, ErrUnresolvablePrice
		}

	default:
		return domain.Quote{}, fmt.Errorf("%w: unknown duration kind %q", ErrUnresolvablePrice, resolved.Kind)
	}

	if guestCount > room.MaxOccupancy {
		return domain.Quote{}, fmt.Errorf("%w: %d guests, capacity %d", ErrOccupancyExceeded, guestCount, room.MaxOccupancy)
	}

	var extra float64
	if guestCount > room.BaseOccupancy {
		extraGuests := guestCount - room.BaseOccupancy
		multiplier := 1.0
		if resolved.Kind == domain.DurationManualNights {
			multiplier = float64(resolved.Magnitude)
		} else if stayEntry != nil && stayEntry.IsNightEquivalent() {
			multiplier = math.Max(1, math.Round(float64(resolved.Magnitude)/domain.MinutesPerNight))
		}
		extra = float64(extraGuests) * room.ExtraGuestPrice * multiplier
	}

	return domain.Quote{BaseAmount: base, ExtraGuestAmount: extra}, nil
}
