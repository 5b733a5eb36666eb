package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
)

type mockReservationRepo struct {
	reservation *domain.Reservation
	getErr      error

	listResult []*domain.Reservation
	listErr    error

	gotStatuses []domain.ReservationStatus
	gotLimit    uint64

	updatedStatus domain.ReservationStatus
	updateErr     error

	deleteErr error
	deleted   bool
}

func (m *mockReservationRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	// Копия, чтобы мутации сервиса не влияли на фикстуру
	cp := *m.reservation
	return &cp, nil
}

func (m *mockReservationRepo) ListByHotel(_ context.Context, _ int64, statuses []domain.ReservationStatus, limit uint64) ([]*domain.Reservation, error) {
	m.gotStatuses = statuses
	m.gotLimit = limit
	return m.listResult, m.listErr
}

func (m *mockReservationRepo) UpdateStatus(_ context.Context, _ int64, status domain.ReservationStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedStatus = status
	return nil
}

func (m *mockReservationRepo) Delete(_ context.Context, _ int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = true
	return nil
}

type mockRoomRepo struct {
	updated   bool
	updateOK  bool
	updateErr error
	gotTo     domain.RoomState
	gotFrom   domain.RoomState
}

func (m *mockRoomRepo) UpdateStateIf(_ context.Context, _ int64, to, from domain.RoomState) (bool, error) {
	m.updated = true
	m.gotTo = to
	m.gotFrom = from
	return m.updateOK, m.updateErr
}

type mockGate struct {
	conflict     bool
	err          error
	gotExcludeID *int64
}

func (m *mockGate) HasConflict(_ context.Context, _ int64, _, _ time.Time, excludeID *int64) (bool, error) {
	m.gotExcludeID = excludeID
	return m.conflict, m.err
}

type mockPublisher struct {
	published int
}

func (m *mockPublisher) Publish() { m.published++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fixtureReservation(status domain.ReservationStatus) *domain.Reservation {
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID:                42,
		HotelID:           1,
		RoomID:            7,
		UserID:            100,
		GuestName:         "Иван Петров",
		GuestCount:        2,
		StartAt:           start,
		EndAt:             start.Add(22 * time.Hour),
		Status:            status,
		DurationKind:      domain.DurationManualNights,
		DurationMagnitude: 1,
		BaseAmount:        10000,
		TotalAmount:       10000,
		Origin:            domain.OriginDirect,
	}
}

func newTestService(repo *mockReservationRepo, rooms *mockRoomRepo, gate *mockGate, events *mockPublisher) *Service {
	return NewService(repo, rooms, gate, events, nopLogger{})
}

func TestConfirm(t *testing.T) {
	testCases := []struct {
		name        string
		status      domain.ReservationStatus
		expectedErr error
	}{
		{name: "requested reservation confirms", status: domain.StatusRequested},
		{name: "confirmed cannot be confirmed again", status: domain.StatusConfirmed, expectedErr: ErrCannotConfirm},
		{name: "cancelled cannot be confirmed", status: domain.StatusCancelled, expectedErr: ErrCannotConfirm},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockReservationRepo{reservation: fixtureReservation(tc.status)}
			events := &mockPublisher{}
			svc := newTestService(repo, &mockRoomRepo{}, &mockGate{}, events)

			resp, err := svc.Confirm(context.Background(), 42)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Zero(t, events.published)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
			assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
			assert.Equal(t, 1, events.published)
		})
	}
}

func TestConfirm_NotFound(t *testing.T) {
	repo := &mockReservationRepo{getErr: reservationRepo.ErrReservationNotFound}
	svc := newTestService(repo, &mockRoomRepo{}, &mockGate{}, &mockPublisher{})

	_, err := svc.Confirm(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_FreesRoomWhenNoOtherReservations(t *testing.T) {
	repo := &mockReservationRepo{reservation: fixtureReservation(domain.StatusConfirmed)}
	rooms := &mockRoomRepo{updateOK: true}
	gate := &mockGate{conflict: false}
	events := &mockPublisher{}
	svc := newTestService(repo, rooms, gate, events)

	resp, err := svc.Cancel(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Reservation.Status)
	assert.True(t, resp.RoomFreed)
	assert.Equal(t, domain.RoomStateFree, rooms.gotTo)
	assert.Equal(t, domain.RoomStateReserved, rooms.gotFrom)
	// Своя бронь исключается из проверки пересечения
	require.NotNil(t, gate.gotExcludeID)
	assert.Equal(t, int64(42), *gate.gotExcludeID)
	assert.Equal(t, 1, events.published)
}

func TestCancel_KeepsRoomWhenOtherReservationsRemain(t *testing.T) {
	repo := &mockReservationRepo{reservation: fixtureReservation(domain.StatusRequested)}
	rooms := &mockRoomRepo{}
	svc := newTestService(repo, rooms, &mockGate{conflict: true}, &mockPublisher{})

	resp, err := svc.Cancel(context.Background(), 42)
	require.NoError(t, err)

	assert.False(t, resp.RoomFreed)
	assert.False(t, rooms.updated)
	assert.Equal(t, domain.StatusCancelled, repo.updatedStatus)
}

func TestCancel_CheckFailureSuppressesRoomFlipOnly(t *testing.T) {
	// Отмена остаётся в силе, даже если проверку пересечения выполнить не удалось
	repo := &mockReservationRepo{reservation: fixtureReservation(domain.StatusConfirmed)}
	rooms := &mockRoomRepo{}
	gate := &mockGate{conflict: true, err: errors.New("db down")}
	events := &mockPublisher{}
	svc := newTestService(repo, rooms, gate, events)

	resp, err := svc.Cancel(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Reservation.Status)
	assert.False(t, resp.RoomFreed)
	assert.False(t, rooms.updated)
	assert.Equal(t, 1, events.published)
}

func TestCancel_TerminalStatusRejected(t *testing.T) {
	repo := &mockReservationRepo{reservation: fixtureReservation(domain.StatusCheckedIn)}
	svc := newTestService(repo, &mockRoomRepo{}, &mockGate{}, &mockPublisher{})

	_, err := svc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus(t *testing.T) {
	testCases := []struct {
		name        string
		current     domain.ReservationStatus
		target      string
		expectedErr error
	}{
		{name: "requested to confirmed", current: domain.StatusRequested, target: "confirmed"},
		{name: "confirmed to no_show", current: domain.StatusConfirmed, target: "no_show"},
		{name: "requested to no_show is not allowed", current: domain.StatusRequested, target: "no_show", expectedErr: ErrInvalidTransition},
		{name: "check-in belongs to the room map", current: domain.StatusConfirmed, target: "checked_in", expectedErr: ErrTransitionDelegated},
		{name: "check-out belongs to the room map", current: domain.StatusCheckedIn, target: "checked_out", expectedErr: ErrTransitionDelegated},
		{name: "unknown status", current: domain.StatusRequested, target: "parked", expectedErr: ErrInvalidStatus},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockReservationRepo{reservation: fixtureReservation(tc.current)}
			svc := newTestService(repo, &mockRoomRepo{}, &mockGate{}, &mockPublisher{})

			resp, err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: tc.target})
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.target, resp.Status)
		})
	}
}

func TestUpdateStatus_CancelledDelegatesToCancelProtocol(t *testing.T) {
	repo := &mockReservationRepo{reservation: fixtureReservation(domain.StatusConfirmed)}
	rooms := &mockRoomRepo{updateOK: true}
	gate := &mockGate{}
	svc := newTestService(repo, rooms, gate, &mockPublisher{})

	resp, err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	// Протокол освобождения номера отработал
	assert.True(t, rooms.updated)
	require.NotNil(t, gate.gotExcludeID)
}

func TestListByHotel(t *testing.T) {
	t.Run("default filter is active statuses", func(t *testing.T) {
		repo := &mockReservationRepo{listResult: []*domain.Reservation{fixtureReservation(domain.StatusRequested)}}
		svc := newTestService(repo, &mockRoomRepo{}, &mockGate{}, &mockPublisher{})

		resp, err := svc.ListByHotel(context.Background(), &models.ListReservationsRequest{HotelID: 1})
		require.NoError(t, err)

		assert.Equal(t, domain.ActiveStatuses, repo.gotStatuses)
		assert.Equal(t, uint64(domain.ReservationListLimit), repo.gotLimit)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("explicit filter is parsed", func(t *testing.T) {
		repo := &mockReservationRepo{}
		svc := newTestService(repo, &mockRoomRepo{}, &mockGate{}, &mockPublisher{})

		_, err := svc.ListByHotel(context.Background(), &models.ListReservationsRequest{
			HotelID:  1,
			Statuses: []string{"cancelled", "no_show"},
		})
		require.NoError(t, err)

		assert.Equal(t, []domain.ReservationStatus{domain.StatusCancelled, domain.StatusNoShow}, repo.gotStatuses)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		svc := newTestService(&mockReservationRepo{}, &mockRoomRepo{}, &mockGate{}, &mockPublisher{})

		_, err := svc.ListByHotel(context.Background(), &models.ListReservationsRequest{
			HotelID:  1,
			Statuses: []string{"archived"},
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestDelete(t *testing.T) {
	t.Run("success publishes event", func(t *testing.T) {
		repo := &mockReservationRepo{}
		events := &mockPublisher{}
		svc := newTestService(repo, &mockRoomRepo{}, &mockGate{}, events)

		require.NoError(t, svc.Delete(context.Background(), 42))
		assert.True(t, repo.deleted)
		assert.Equal(t, 1, events.published)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockReservationRepo{deleteErr: reservationRepo.ErrReservationNotFound}
		svc := newTestService(repo, &mockRoomRepo{}, &mockGate{}, &mockPublisher{})

		err := svc.Delete(context.Background(), 42)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}
