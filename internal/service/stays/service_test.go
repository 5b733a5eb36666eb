package stays

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	stayRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/stay"
	"github.com/m04kA/HMS-ReservationService/pkg/ptr"
)

type mockStayRepo struct {
	entries   []*domain.StayDuration
	listErr   error
	listCalls int

	getResult *domain.StayDuration
	getErr    error

	upsertErr error
}

func (m *mockStayRepo) GetByID(_ context.Context, _ int64) (*domain.StayDuration, error) {
	return m.getResult, m.getErr
}

func (m *mockStayRepo) ListByHotel(_ context.Context, _ int64) ([]*domain.StayDuration, error) {
	m.listCalls++
	return m.entries, m.listErr
}

func (m *mockStayRepo) Upsert(_ context.Context, entry *domain.StayDuration) (*domain.StayDuration, error) {
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	cp := *entry
	return &cp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validEntry() *domain.StayDuration {
	return &domain.StayDuration{
		ID:      5,
		HotelID: 1,
		Name:    "3 hours",
		Minutes: 180,
		Price:   ptr.Ptr(4500.0),
		Active:  true,
	}
}

func TestListByHotel_CachesResult(t *testing.T) {
	repo := &mockStayRepo{entries: []*domain.StayDuration{validEntry()}}
	svc := NewService(repo, nopLogger{})

	first, err := svc.ListByHotel(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.ListByHotel(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Второй вызов обслужен из кэша
	assert.Equal(t, 1, repo.listCalls)
}

func TestListByHotel_RepositoryError(t *testing.T) {
	repo := &mockStayRepo{listErr: errors.New("db down")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.ListByHotel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCatalogByHotel(t *testing.T) {
	repo := &mockStayRepo{entries: []*domain.StayDuration{
		{ID: 5, HotelID: 1, Name: "3 hours", Minutes: 180},
		{ID: 7, HotelID: 1, Name: "Night package", Minutes: 1440},
	}}
	svc := NewService(repo, nopLogger{})

	catalog, err := svc.CatalogByHotel(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, catalog, 2)
	assert.Equal(t, "3 hours", catalog[5].Name)
	assert.Equal(t, 1440, catalog[7].Minutes)
}

func TestUpsert_InvalidatesCache(t *testing.T) {
	repo := &mockStayRepo{entries: []*domain.StayDuration{validEntry()}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.ListByHotel(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.Upsert(context.Background(), validEntry())
	require.NoError(t, err)

	// Кэш сброшен, следующий запрос снова идёт в репозиторий
	_, err = svc.ListByHotel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestUpsert_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(entry *domain.StayDuration)
	}{
		{name: "zero id", mutate: func(e *domain.StayDuration) { e.ID = 0 }},
		{name: "zero hotel id", mutate: func(e *domain.StayDuration) { e.HotelID = 0 }},
		{name: "empty name", mutate: func(e *domain.StayDuration) { e.Name = "" }},
		{name: "zero minutes", mutate: func(e *domain.StayDuration) { e.Minutes = 0 }},
		{name: "negative price", mutate: func(e *domain.StayDuration) { e.Price = ptr.Ptr(-1.0) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(&mockStayRepo{}, nopLogger{})
			entry := validEntry()
			tc.mutate(entry)

			_, err := svc.Upsert(context.Background(), entry)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockStayRepo{getErr: stayRepo.ErrStayDurationNotFound}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrStayDurationNotFound)
}
