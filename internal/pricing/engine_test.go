package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/ptr"
)

func standardRoom() domain.RoomPricing {
	return domain.RoomPricing{
		BasePrice:           10000,
		BaseOccupancy:       2,
		MaxOccupancy:        4,
		ExtraGuestPrice:     1500,
		AllowsHourlyBooking: true,
		HourlyBasePrice:     800,
	}
}

func resolvedStay(kind domain.DurationKind, magnitude int) domain.ResolvedStay {
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	if kind == domain.DurationPredefinedStay {
		end = start.Add(time.Duration(magnitude) * time.Minute)
	}
	return domain.ResolvedStay{StartAt: start, EndAt: end, Kind: kind, Magnitude: magnitude}
}

func TestQuote_ManualNights(t *testing.T) {
	testCases := []struct {
		name          string
		nights        int
		guestCount    int
		expectedBase  float64
		expectedExtra float64
	}{
		{
			name:          "single night within base occupancy",
			nights:        1,
			guestCount:    2,
			expectedBase:  10000,
			expectedExtra: 0,
		},
		{
			name:   "two nights with one extra guest",
			nights: 2,
			// Доплата умножается на количество ночей
			guestCount:    3,
			expectedBase:  20000,
			expectedExtra: 3000,
		},
		{
			name:          "three nights at full capacity",
			nights:        3,
			guestCount:    4,
			expectedBase:  30000,
			expectedExtra: 9000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := Quote(standardRoom(), tc.guestCount, resolvedStay(domain.DurationManualNights, tc.nights), nil)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedBase, quote.BaseAmount)
			assert.Equal(t, tc.expectedExtra, quote.ExtraGuestAmount)
			assert.Equal(t, tc.expectedBase+tc.expectedExtra, quote.Total())
		})
	}
}

func TestQuote_PredefinedStay_PackagePrice(t *testing.T) {
	entry := &domain.StayDuration{ID: 5, Minutes: 180, Price: ptr.Ptr(4500.0)}

	quote, err := Quote(standardRoom(), 2, resolvedStay(domain.DurationPredefinedStay, 180), entry)
	require.NoError(t, err)

	// Пакетная цена имеет приоритет над почасовым фолбэком
	assert.Equal(t, 4500.0, quote.BaseAmount)
	assert.Equal(t, 0.0, quote.ExtraGuestAmount)
}

func TestQuote_PredefinedStay_HourlyFallback(t *testing.T) {
	entry := &domain.StayDuration{ID: 5, Minutes: 120}

	quote, err := Quote(standardRoom(), 2, resolvedStay(domain.DurationPredefinedStay, 120), entry)
	require.NoError(t, err)

	assert.Equal(t, 1600.0, quote.BaseAmount)
}

func TestQuote_PredefinedStay_UnresolvablePrice(t *testing.T) {
	room := standardRoom()
	room.HourlyBasePrice = 0
	entry := &domain.StayDuration{ID: 5, Minutes: 120}

	_, err := Quote(room, 2, resolvedStay(domain.DurationPredefinedStay, 120), entry)
	assert.ErrorIs(t, err, ErrUnresolvablePrice)
}

func TestQuote_ExtraGuestMultiplier(t *testing.T) {
	testCases := []struct {
		name          string
		minutes       int
		price         *float64
		expectedExtra float64
	}{
		{
			name:    "hourly stay surcharged once",
			minutes: 180,
			price:   ptr.Ptr(4500.0),
			// 1 extra guest * 1500 * 1
			expectedExtra: 1500,
		},
		{
			name:    "night equivalent surcharged per night",
			minutes: 24 * 60,
			price:   ptr.Ptr(9000.0),
			// round(1440/1440) = 1
			expectedExtra: 1500,
		},
		{
			name:    "long night package rounds to one night",
			minutes: 26 * 60,
			price:   ptr.Ptr(9500.0),
			// round(1560/1440) = 1
			expectedExtra: 1500,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry := &domain.StayDuration{ID: 5, Minutes: tc.minutes, Price: tc.price}

			quote, err := Quote(standardRoom(), 3, resolvedStay(domain.DurationPredefinedStay, tc.minutes), entry)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedExtra, quote.ExtraGuestAmount)
		})
	}
}

func TestQuote_OccupancyExceeded(t *testing.T) {
	_, err := Quote(standardRoom(), 5, resolvedStay(domain.DurationManualNights, 1), nil)
	assert.ErrorIs(t, err, ErrOccupancyExceeded)
}

func TestQuote_InvalidGuestCount(t *testing.T) {
	_, err := Quote(standardRoom(), 0, resolvedStay(domain.DurationManualNights, 1), nil)
	assert.ErrorIs(t, err, ErrInvalidGuestCount)
}

func TestQuote_ZeroPackagePriceIsUsable(t *testing.T) {
	// Нулевая пакетная цена — валидная цена, фолбэк не включается
	entry := &domain.StayDuration{ID: 5, Minutes: 120, Price: ptr.Ptr(0.0)}

	quote, err := Quote(standardRoom(), 2, resolvedStay(domain.DurationPredefinedStay, 120), entry)
	require.NoError(t, err)
	assert.Equal(t, 0.0, quote.BaseAmount)
}

func TestQuote_UnknownKind(t *testing.T) {
	stay := domain.ResolvedStay{Kind: domain.DurationKind("bogus"), Magnitude: 1}
	_, err := Quote(standardRoom(), 2, stay, nil)
	assert.ErrorIs(t, err, ErrUnresolvablePrice)
}
