package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/pkg/ptr"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

func catalogWith(entries ...*domain.StayDuration) map[int64]*domain.StayDuration {
	catalog := make(map[int64]*domain.StayDuration, len(entries))
	for _, e := range entries {
		catalog[e.ID] = e
	}
	return catalog
}

func TestResolve_ManualNights(t *testing.T) {
	checkout := types.TimeString("12:00")

	testCases := []struct {
		name         string
		arrival      time.Time
		nights       int
		expectedEnd  time.Time
		expectedMagn int
	}{
		{
			name:         "one night from afternoon arrival",
			arrival:      time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
			nights:       1,
			expectedEnd:  time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC),
			expectedMagn: 1,
		},
		{
			name:    "late arrival still checks out next day at noon",
			arrival: time.Date(2026, 9, 1, 20, 30, 0, 0, time.UTC),
			nights:  1,
			// Фактическая длительность меньше суток, это контракт
			expectedEnd:  time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC),
			expectedMagn: 1,
		},
		{
			name:         "three nights",
			arrival:      time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
			nights:       3,
			expectedEnd:  time.Date(2026, 9, 4, 12, 0, 0, 0, time.UTC),
			expectedMagn: 3,
		},
		{
			name:         "month boundary",
			arrival:      time.Date(2026, 9, 30, 15, 0, 0, 0, time.UTC),
			nights:       2,
			expectedEnd:  time.Date(2026, 10, 2, 12, 0, 0, 0, time.UTC),
			expectedMagn: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spec := domain.DurationSpec{Kind: domain.DurationManualNights, Nights: tc.nights}

			resolved, err := Resolve(tc.arrival, spec, checkout, nil)
			require.NoError(t, err)

			assert.Equal(t, tc.arrival, resolved.StartAt)
			assert.Equal(t, tc.expectedEnd, resolved.EndAt)
			assert.Equal(t, domain.DurationManualNights, resolved.Kind)
			assert.Equal(t, tc.expectedMagn, resolved.Magnitude)
		})
	}
}

func TestResolve_ManualNights_SecondsTruncated(t *testing.T) {
	arrival := time.Date(2026, 9, 1, 14, 22, 37, 123456789, time.UTC)
	spec := domain.DurationSpec{Kind: domain.DurationManualNights, Nights: 1}

	resolved, err := Resolve(arrival, spec, types.TimeString("12:00"), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, resolved.EndAt.Second())
	assert.Equal(t, 0, resolved.EndAt.Nanosecond())
	assert.Equal(t, 12, resolved.EndAt.Hour())
	assert.Equal(t, 0, resolved.EndAt.Minute())
}

func TestResolve_ManualNights_InvalidCheckoutFallsBack(t *testing.T) {
	arrival := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	spec := domain.DurationSpec{Kind: domain.DurationManualNights, Nights: 1}

	resolved, err := Resolve(arrival, spec, types.TimeString("garbage"), nil)
	require.NoError(t, err)

	// При некорректной конфигурации используется дефолтный checkout-час
	assert.Equal(t, time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC), resolved.EndAt)
}

func TestResolve_PredefinedStay(t *testing.T) {
	arrival := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	catalog := catalogWith(
		&domain.StayDuration{ID: 5, Minutes: 180, Name: "3 hours", Active: true},
		&domain.StayDuration{ID: 7, Minutes: 1440, Name: "Night package", Active: true},
	)

	testCases := []struct {
		name         string
		stayID       int64
		expectedEnd  time.Time
		expectedMagn int
	}{
		{
			name:         "three hour stay",
			stayID:       5,
			expectedEnd:  arrival.Add(3 * time.Hour),
			expectedMagn: 180,
		},
		{
			name:         "night package follows elapsed minutes, not checkout hour",
			stayID:       7,
			expectedEnd:  arrival.Add(24 * time.Hour),
			expectedMagn: 1440,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spec := domain.DurationSpec{Kind: domain.DurationPredefinedStay, StayDurationID: tc.stayID}

			resolved, err := Resolve(arrival, spec, types.TimeString("12:00"), catalog)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedEnd, resolved.EndAt)
			assert.Equal(t, domain.DurationPredefinedStay, resolved.Kind)
			assert.Equal(t, tc.expectedMagn, resolved.Magnitude)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	arrival := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	checkout := types.TimeString("12:00")

	t.Run("zero arrival", func(t *testing.T) {
		spec := domain.DurationSpec{Kind: domain.DurationManualNights, Nights: 1}
		_, err := Resolve(time.Time{}, spec, checkout, nil)
		assert.ErrorIs(t, err, ErrInvalidArrival)
	})

	t.Run("zero nights", func(t *testing.T) {
		spec := domain.DurationSpec{Kind: domain.DurationManualNights, Nights: 0}
		_, err := Resolve(arrival, spec, checkout, nil)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("unknown catalog entry", func(t *testing.T) {
		spec := domain.DurationSpec{Kind: domain.DurationPredefinedStay, StayDurationID: 99}
		_, err := Resolve(arrival, spec, checkout, catalogWith())
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("unknown kind", func(t *testing.T) {
		spec := domain.DurationSpec{Kind: domain.DurationKind("bogus")}
		_, err := Resolve(arrival, spec, checkout, nil)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestIsOvernightStay(t *testing.T) {
	catalog := catalogWith(
		&domain.StayDuration{ID: 1, Minutes: 180},
		&domain.StayDuration{ID: 2, Minutes: 22 * 60},
		&domain.StayDuration{ID: 3, Minutes: 24 * 60},
		&domain.StayDuration{ID: 4, Minutes: 26 * 60},
		&domain.StayDuration{ID: 5, Minutes: 27 * 60},
	)

	assert.False(t, IsOvernightStay(1, catalog))
	assert.True(t, IsOvernightStay(2, catalog))
	assert.True(t, IsOvernightStay(3, catalog))
	assert.True(t, IsOvernightStay(4, catalog))
	assert.False(t, IsOvernightStay(5, catalog))
	assert.False(t, IsOvernightStay(42, catalog))
}

func TestResolve_PredefinedStay_PriceIgnoredByResolver(t *testing.T) {
	// Цена записи каталога не влияет на интервал
	arrival := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	catalog := catalogWith(
		&domain.StayDuration{ID: 9, Minutes: 120, Price: ptr.Ptr(5000.0)},
	)

	spec := domain.DurationSpec{Kind: domain.DurationPredefinedStay, StayDurationID: 9}
	resolved, err := Resolve(arrival, spec, types.TimeString("12:00"), catalog)
	require.NoError(t, err)
	assert.Equal(t, arrival.Add(2*time.Hour), resolved.EndAt)
}
