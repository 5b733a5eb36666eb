package reservation

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func reservationRows(id int64, status domain.ReservationStatus, start, end time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "hotel_id", "room_id", "user_id",
		"guest_name", "guest_phone", "guest_count",
		"start_at", "end_at", "status",
		"duration_kind", "duration_magnitude", "stay_duration_id",
		"base_amount", "extra_guest_amount", "total_amount",
		"notes", "origin", "created_at", "updated_at",
	}).AddRow(
		id, 1, 7, 100,
		"Иван Петров", nil, 2,
		start, end, string(status),
		string(domain.DurationManualNights), 1, nil,
		10000.0, 0.0, 10000.0,
		nil, domain.OriginDirect, start.Add(-time.Hour), start.Add(-time.Hour),
	)
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC)
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)

	res := &domain.Reservation{
		HotelID:           1,
		RoomID:            7,
		UserID:            100,
		GuestName:         "Иван Петров",
		GuestCount:        2,
		StartAt:           start,
		EndAt:             start.Add(22 * time.Hour),
		Status:            domain.StatusRequested,
		DurationKind:      domain.DurationManualNights,
		DurationMagnitude: 1,
		BaseAmount:        10000,
		TotalAmount:       10000,
		Origin:            domain.OriginDirect,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(42, now, now))

	created, err := repo.Create(context.Background(), res)
	require.NoError(t, err)

	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)

	testCases := []struct {
		name             string
		mockExpectations func(mock sqlmock.Sqlmock)
		expectedErr      error
	}{
		{
			name: "found",
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
					WithArgs(int64(42)).
					WillReturnRows(reservationRows(42, domain.StatusConfirmed, start, start.Add(22*time.Hour)))
			},
		},
		{
			name: "scan error",
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
					WithArgs(int64(42)).
					WillReturnRows(reservationRows(0, "", start, start).RowError(0, errors.New("boom")))
			},
			expectedErr: ErrScanRow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tc.mockExpectations(mock)

			res, err := repo.GetByID(context.Background(), 42)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(42), res.ID)
			assert.Equal(t, domain.StatusConfirmed, res.Status)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetByID_NoRows(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdateStatus(t *testing.T) {
	t.Run("updates the row", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), 42, domain.StatusConfirmed)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing reservation", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), 42, domain.StatusConfirmed)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestDelete(t *testing.T) {
	t.Run("deletes the row", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations")).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), 42))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing reservation", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservations")).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 42), ErrReservationNotFound)
	})
}

func TestListByHotel(t *testing.T) {
	repo, mock := newMockRepo(t)
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)

	rows := reservationRows(42, domain.StatusRequested, start, start.Add(22*time.Hour)).
		AddRow(
			43, 1, 8, 100,
			"Анна Сидорова", nil, 1,
			start.Add(24*time.Hour), start.Add(46*time.Hour), string(domain.StatusConfirmed),
			string(domain.DurationManualNights), 1, nil,
			12000.0, 0.0, 12000.0,
			nil, domain.OriginDirect, start, start,
		)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY start_at ASC")).
		WillReturnRows(rows)

	reservations, err := repo.ListByHotel(context.Background(), 1, domain.ActiveStatuses, 100)
	require.NoError(t, err)

	require.Len(t, reservations, 2)
	assert.Equal(t, int64(42), reservations[0].ID)
	assert.Equal(t, int64(43), reservations[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasOverlap(t *testing.T) {
	testCases := []struct {
		name      string
		excludeID *int64
		overlaps  bool
	}{
		{name: "free interval", overlaps: false},
		{name: "taken interval", overlaps: true},
		{name: "own reservation excluded", excludeID: ptrInt64(42), overlaps: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
			end := start.Add(22 * time.Hour)

			mock.ExpectQuery(regexp.QuoteMeta("SELECT reservation_overlap_exists($1, $2, $3, $4)")).
				WillReturnRows(sqlmock.NewRows([]string{"reservation_overlap_exists"}).AddRow(tc.overlaps))

			overlaps, err := repo.HasOverlap(context.Background(), 7, start, end, tc.excludeID)
			require.NoError(t, err)
			assert.Equal(t, tc.overlaps, overlaps)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHasOverlap_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT reservation_overlap_exists")).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.HasOverlap(context.Background(), 7, start, start.Add(time.Hour), nil)
	assert.ErrorIs(t, err, ErrExecQuery)
}

func ptrInt64(v int64) *int64 {
	return &v
}
