package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	roomRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/room"
)

// Service сервис чтения справочника номеров
type Service struct {
	repo   RoomRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(repo RoomRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return room, nil
}

// ListByHotel получает активные номера отеля
func (s *Service) ListByHotel(ctx context.Context, hotelID int64) ([]*domain.Room, error) {
	roomsList, err := s.repo.ListByHotel(ctx, hotelID)
	if err != nil {
		s.logger.Error("ListByHotel: repository error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: ListByHotel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByHotel: fetched %d rooms for hotel=%d", len(roomsList), hotelID)
	return roomsList, nil
}
