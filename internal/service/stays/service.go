package stays

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	stayRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/stay"
)

const (
	cacheTTL             = 5 * time.Minute
	cacheCleanupInterval = 10 * time.Minute
)

// Service сервис каталога длительностей проживания.
// Каталог маленький и почти не меняется, поэтому списки по отелю держим в
// in-memory кэше и инвалидируем его при каждом Upsert.
type Service struct {
	repo   StayRepository
	cache  *cache.Cache
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога длительностей
func NewService(repo StayRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache.New(cacheTTL, cacheCleanupInterval),
		logger: logger,
	}
}

// GetByID получает запись каталога по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.StayDuration, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, stayRepo.ErrStayDurationNotFound) {
			s.logger.Warn("GetByID: stay duration id=%d not found", id)
			return nil, ErrStayDurationNotFound
		}
		s.logger.Error("GetByID: repository error for stay duration id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return entry, nil
}

// ListByHotel получает активные записи каталога отеля
func (s *Service) ListByHotel(ctx context.Context, hotelID int64) ([]*domain.StayDuration, error) {
	key := cacheKey(hotelID)
	if cached, found := s.cache.Get(key); found {
		return cached.([]*domain.StayDuration), nil
	}

	entries, err := s.repo.ListByHotel(ctx, hotelID)
	if err != nil {
		s.logger.Error("ListByHotel: repository error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: ListByHotel - repository error: %v", ErrInternal, err)
	}

	s.cache.Set(key, entries, cache.DefaultExpiration)
	s.logger.Info("ListByHotel: cached %d stay durations for hotel=%d", len(entries), hotelID)

	return entries, nil
}

// CatalogByHotel получает каталог отеля в виде map по ID записи.
// Используется резолвером длительности при создании и редактировании брони.
func (s *Service) CatalogByHotel(ctx context.Context, hotelID int64) (map[int64]*domain.StayDuration, error) {
	entries, err := s.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	catalog := make(map[int64]*domain.StayDuration, len(entries))
	for _, entry := range entries {
		catalog[entry.ID] = entry
	}

	return catalog, nil
}

// Upsert создает или обновляет запись каталога и инвалидирует кэш отеля
func (s *Service) Upsert(ctx context.Context, entry *domain.StayDuration) (*domain.StayDuration, error) {
	if err := validateEntry(entry); err != nil {
		s.logger.Warn("Upsert: invalid stay duration id=%d: %v", entry.ID, err)
		return nil, err
	}

	saved, err := s.repo.Upsert(ctx, entry)
	if err != nil {
		s.logger.Error("Upsert: repository error for stay duration id=%d: %v", entry.ID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.cache.Delete(cacheKey(entry.HotelID))
	s.logger.Info("Upsert: saved stay duration id=%d (%s, %d min) for hotel=%d",
		saved.ID, saved.Name, saved.Minutes, saved.HotelID)

	return saved, nil
}

func validateEntry(entry *domain.StayDuration) error {
	if entry.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if entry.HotelID <= 0 {
		return fmt.Errorf("%w: hotel_id must be positive", ErrInvalidInput)
	}
	if entry.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if entry.Minutes <= 0 {
		return fmt.Errorf("%w: minutes must be positive", ErrInvalidInput)
	}
	if entry.Price != nil && *entry.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

func cacheKey(hotelID int64) string {
	return fmt.Sprintf("stays:%d", hotelID)
}
