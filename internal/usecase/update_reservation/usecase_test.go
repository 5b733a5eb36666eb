package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/internal/service/availability"
	"github.com/m04kA/HMS-ReservationService/pkg/ptr"
	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

type mockReservationRepo struct {
	existing *domain.Reservation
	getErr   error

	updated   *domain.Reservation
	updateErr error
}

func (m *mockReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	cp := *m.existing
	return &cp, nil
}

func (m *mockReservationRepo) Update(_ context.Context, r *domain.Reservation) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	cp := *r
	m.updated = &cp
	return nil
}

type mockRoomRepo struct {
	room   *domain.Room
	getErr error
}

func (m *mockRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.room, nil
}

type mockHotelRepo struct {
	cfg *domain.HotelConfig
	err error
}

func (m *mockHotelRepo) GetConfig(_ context.Context, _ int64) (*domain.HotelConfig, error) {
	return m.cfg, m.err
}

type mockStayCatalog struct {
	catalog map[int64]*domain.StayDuration
	err     error
}

func (m *mockStayCatalog) CatalogByHotel(_ context.Context, _ int64) (map[int64]*domain.StayDuration, error) {
	return m.catalog, m.err
}

type mockGate struct {
	err          error
	gotRoomID    int64
	gotExcludeID *int64
}

func (m *mockGate) EnsureAvailable(_ context.Context, roomID int64, _, _ time.Time, excludeID *int64) error {
	m.gotRoomID = roomID
	m.gotExcludeID = excludeID
	return m.err
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockPublisher struct {
	published int
}

func (m *mockPublisher) Publish() { m.published++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixtures struct {
	reservations *mockReservationRepo
	rooms        *mockRoomRepo
	hotels       *mockHotelRepo
	catalog      *mockStayCatalog
	gate         *mockGate
	events       *mockPublisher
}

func defaultFixtures() *fixtures {
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	return &fixtures{
		reservations: &mockReservationRepo{
			existing: &domain.Reservation{
				ID:                42,
				HotelID:           1,
				RoomID:            7,
				UserID:            100,
				GuestName:         "Иван Петров",
				GuestCount:        2,
				StartAt:           start,
				EndAt:             start.Add(22 * time.Hour),
				Status:            domain.StatusConfirmed,
				DurationKind:      domain.DurationManualNights,
				DurationMagnitude: 1,
				BaseAmount:        50000,
				TotalAmount:       50000,
				Origin:            domain.OriginDirect,
			},
		},
		rooms: &mockRoomRepo{
			room: &domain.Room{
				ID:                  7,
				HotelID:             1,
				Name:                "101",
				BasePrice:           50000,
				BaseOccupancy:       2,
				MaxOccupancy:        4,
				ExtraGuestPrice:     5000,
				AllowsHourlyBooking: true,
				HourlyBasePrice:     3000,
				State:               domain.RoomStateReserved,
				Active:              true,
			},
		},
		hotels: &mockHotelRepo{
			cfg: &domain.HotelConfig{HotelID: 1, Name: "Grand", CheckoutHour: types.TimeString("12:00")},
		},
		catalog: &mockStayCatalog{
			catalog: map[int64]*domain.StayDuration{
				5: {ID: 5, HotelID: 1, Name: "3 hours", Minutes: 180, Price: ptr.Ptr(4500.0), Active: true},
			},
		},
		gate:   &mockGate{},
		events: &mockPublisher{},
	}
}

func (f *fixtures) usecase() *UseCase {
	return NewUseCase(f.reservations, f.rooms, f.hotels, f.catalog, f.gate, passthroughTxManager{}, f.events, nopLogger{})
}

func (f *fixtures) validRequest() *Request {
	return &Request{
		ID:         42,
		RoomID:     7,
		GuestName:  "Иван Петров",
		GuestCount: 2,
		ArrivalAt:  time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC),
		Nights:     3,
	}
}

func TestExecute_RecomputesIntervalAndAmounts(t *testing.T) {
	f := defaultFixtures()
	uc := f.usecase()

	resp, err := uc.Execute(context.Background(), f.validRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.DurationMagnitude)
	assert.Equal(t, time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC), resp.EndAt)
	// 3 ночи * 50000
	assert.Equal(t, 150000.0, resp.BaseAmount)
	assert.Equal(t, 150000.0, resp.TotalAmount)
	assert.Equal(t, 1, f.events.published)

	require.NotNil(t, f.reservations.updated)
	assert.Equal(t, 150000.0, f.reservations.updated.TotalAmount)
}

func TestExecute_ImmutableFieldsPreserved(t *testing.T) {
	f := defaultFixtures()
	uc := f.usecase()

	resp, err := uc.Execute(context.Background(), f.validRequest())
	require.NoError(t, err)

	// Отель, сотрудник, статус и канал оформления не редактируются
	assert.Equal(t, int64(1), resp.HotelID)
	assert.Equal(t, int64(100), resp.UserID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.OriginDirect, resp.Origin)

	assert.Equal(t, int64(1), f.reservations.updated.HotelID)
	assert.Equal(t, int64(100), f.reservations.updated.UserID)
	assert.Equal(t, domain.StatusConfirmed, f.reservations.updated.Status)
}

func TestExecute_ExcludesOwnReservationFromOverlapCheck(t *testing.T) {
	f := defaultFixtures()
	uc := f.usecase()

	_, err := uc.Execute(context.Background(), f.validRequest())
	require.NoError(t, err)

	require.NotNil(t, f.gate.gotExcludeID)
	assert.Equal(t, int64(42), *f.gate.gotExcludeID)
}

func TestExecute_NotEditable(t *testing.T) {
	testCases := []struct {
		name   string
		status domain.ReservationStatus
	}{
		{name: "checked in", status: domain.StatusCheckedIn},
		{name: "cancelled", status: domain.StatusCancelled},
		{name: "no show", status: domain.StatusNoShow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := defaultFixtures()
			f.reservations.existing.Status = tc.status
			uc := f.usecase()

			_, err := uc.Execute(context.Background(), f.validRequest())
			assert.ErrorIs(t, err, ErrNotEditable)
		})
	}
}

func TestExecute_NotFound(t *testing.T) {
	f := defaultFixtures()
	f.reservations.getErr = reservationRepo.ErrReservationNotFound
	uc := f.usecase()

	_, err := uc.Execute(context.Background(), f.validRequest())
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_RoomMove(t *testing.T) {
	t.Run("move into reservable room", func(t *testing.T) {
		f := defaultFixtures()
		f.rooms.room = &domain.Room{
			ID: 9, HotelID: 1, Name: "102",
			BasePrice: 60000, BaseOccupancy: 2, MaxOccupancy: 4,
			State: domain.RoomStateFree, Active: true,
		}
		uc := f.usecase()

		req := f.validRequest()
		req.RoomID = 9

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, int64(9), resp.RoomID)
		assert.Equal(t, 180000.0, resp.BaseAmount)
		assert.Equal(t, int64(9), f.gate.gotRoomID)
	})

	t.Run("move into room under maintenance rejected", func(t *testing.T) {
		f := defaultFixtures()
		f.rooms.room = &domain.Room{
			ID: 9, HotelID: 1, State: domain.RoomStateMaintenance, Active: true,
		}
		uc := f.usecase()

		req := f.validRequest()
		req.RoomID = 9

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrRoomNotReservable)
	})

	t.Run("keeping a reserved room is allowed", func(t *testing.T) {
		// Номер уже помечен reserved собственной бронью, это не препятствие
		f := defaultFixtures()
		f.rooms.room.State = domain.RoomStateReserved
		uc := f.usecase()

		_, err := uc.Execute(context.Background(), f.validRequest())
		assert.NoError(t, err)
	})

	t.Run("room from another hotel rejected", func(t *testing.T) {
		f := defaultFixtures()
		f.rooms.room.HotelID = 2
		uc := f.usecase()

		_, err := uc.Execute(context.Background(), f.validRequest())
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestExecute_SwitchToPredefinedStay(t *testing.T) {
	f := defaultFixtures()
	uc := f.usecase()

	req := f.validRequest()
	req.Nights = 0
	req.StayDurationID = ptr.Ptr(int64(5))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.DurationPredefinedStay), resp.DurationKind)
	assert.Equal(t, 180, resp.DurationMagnitude)
	assert.Equal(t, 4500.0, resp.BaseAmount)
	assert.Equal(t, req.ArrivalAt.Add(3*time.Hour), resp.EndAt)
}

func TestExecute_AvailabilityErrors(t *testing.T) {
	t.Run("conflict leaves reservation untouched", func(t *testing.T) {
		f := defaultFixtures()
		f.gate.err = availability.ErrConflict
		uc := f.usecase()

		_, err := uc.Execute(context.Background(), f.validRequest())
		assert.ErrorIs(t, err, ErrRoomNotAvailable)
		assert.Nil(t, f.reservations.updated)
		assert.Zero(t, f.events.published)
	})

	t.Run("failed check leaves reservation untouched", func(t *testing.T) {
		f := defaultFixtures()
		f.gate.err = availability.ErrCheckFailed
		uc := f.usecase()

		_, err := uc.Execute(context.Background(), f.validRequest())
		assert.ErrorIs(t, err, ErrAvailabilityCheckFailed)
		assert.Nil(t, f.reservations.updated)
	})
}

func TestExecute_ValidationErrors(t *testing.T) {
	f := defaultFixtures()

	testCases := []struct {
		name   string
		mutate func(req *Request)
	}{
		{name: "missing guest name", mutate: func(req *Request) { req.GuestName = "" }},
		{name: "zero guests", mutate: func(req *Request) { req.GuestCount = 0 }},
		{name: "both duration modes set", mutate: func(req *Request) { req.StayDurationID = ptr.Ptr(int64(5)) }},
		{name: "no duration mode set", mutate: func(req *Request) { req.Nights = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc := f.usecase()
			req := f.validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
