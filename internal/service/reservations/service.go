package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
)

// Service сервис жизненного цикла броней.
// Владеет переходами requested -> confirmed -> cancelled/no_show и протоколом
// освобождения номера при отмене. Заезд и выезд (checked_in, checked_out)
// оформляются через шахматку и здесь отклоняются.
type Service struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	gate            AvailabilityGate
	events          EventPublisher
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	gate AvailabilityGate,
	events EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		gate:            gate,
		events:          events,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.getReservation(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainReservation(reservation), nil
}

// ListByHotel получает брони отеля.
// Пустой фильтр статусов означает активные брони (requested, confirmed,
// checked_in). Выборка отсортирована по времени заезда и ограничена сотней.
func (s *Service) ListByHotel(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	statuses := make([]domain.ReservationStatus, 0, len(req.Statuses))
	for _, raw := range req.Statuses {
		status, err := domain.ParseReservationStatus(raw)
		if err != nil {
			s.logger.Warn("ListByHotel: invalid status=%s for hotel=%d", raw, req.HotelID)
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		statuses = append(statuses, status)
	}
	if len(statuses) == 0 {
		statuses = domain.ActiveStatuses
	}

	reservations, err := s.reservationRepo.ListByHotel(ctx, req.HotelID, statuses, domain.ReservationListLimit)
	if err != nil {
		s.logger.Error("ListByHotel: repository error for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: ListByHotel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByHotel: fetched %d reservations for hotel=%d", len(reservations), req.HotelID)
	return models.FromDomainReservationList(reservations), nil
}

// Confirm подтверждает бронь (requested -> confirmed)
func (s *Service) Confirm(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Confirm: confirming reservation id=%d", id)

	reservation, err := s.getReservation(ctx, "Confirm", id)
	if err != nil {
		return nil, err
	}

	if !reservation.CanBeConfirmed() {
		s.logger.Warn("Confirm: reservation id=%d cannot be confirmed, status=%s", id, reservation.Status)
		return nil, ErrCannotConfirm
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		return nil, s.mapUpdateError("Confirm", id, err)
	}

	reservation.Status = domain.StatusConfirmed
	s.events.Publish()

	s.logger.Info("Confirm: successfully confirmed reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// Cancel отменяет бронь и пытается освободить номер.
//
// Протокол освобождения: после отмены номер освобождается, только если у
// номера не осталось других активных броней на интервале отменяемой (свою
// бронь исключаем по id). Перевод состояния условный (reserved -> free),
// чужие состояния номера не трогаем. Если проверку пересечения выполнить не
// удалось, отмена остаётся в силе, но номер не освобождаем: пусть лучше
// останется помеченным занятым, чем освободим номер с живой бронью.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.CancelResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	reservation, err := s.getReservation(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, reservation.Status)
		return nil, ErrCannotCancel
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		return nil, s.mapUpdateError("Cancel", id, err)
	}
	reservation.Status = domain.StatusCancelled

	roomFreed := s.tryFreeRoom(ctx, reservation)

	s.events.Publish()

	s.logger.Info("Cancel: successfully cancelled reservation id=%d, roomFreed=%v", id, roomFreed)
	return &models.CancelResponse{
		Reservation: models.FromDomainReservation(reservation),
		RoomFreed:   roomFreed,
	}, nil
}

// UpdateStatus переводит бронь в произвольный статус с проверкой перехода.
// cancelled делегируется в Cancel ради протокола освобождения номера.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", id, req.Status)

	newStatus, err := domain.ParseReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	if newStatus == domain.StatusCheckedIn || newStatus == domain.StatusCheckedOut {
		s.logger.Warn("UpdateStatus: transition to %s for reservation id=%d is delegated to the room map", newStatus, id)
		return nil, ErrTransitionDelegated
	}

	if newStatus == domain.StatusCancelled {
		cancelResp, err := s.Cancel(ctx, id)
		if err != nil {
			return nil, err
		}
		return cancelResp.Reservation, nil
	}

	reservation, err := s.getReservation(ctx, "UpdateStatus", id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(reservation.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for reservation id=%d",
			reservation.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, newStatus)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, s.mapUpdateError("UpdateStatus", id, err)
	}

	reservation.Status = newStatus
	s.events.Publish()

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", id, newStatus)
	return models.FromDomainReservation(reservation), nil
}

// Delete физически удаляет бронь
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.events.Publish()

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// Вспомогательные методы

// tryFreeRoom пытается освободить номер после отмены брони.
// Возвращает true, если состояние номера переведено reserved -> free.
func (s *Service) tryFreeRoom(ctx context.Context, reservation *domain.Reservation) bool {
	conflict, err := s.gate.HasConflict(ctx, reservation.RoomID, reservation.StartAt, reservation.EndAt, &reservation.ID)
	if err != nil {
		s.logger.Error("tryFreeRoom: overlap check failed for room=%d, keeping room state: %v",
			reservation.RoomID, err)
		return false
	}
	if conflict {
		s.logger.Info("tryFreeRoom: room=%d still has active reservations, keeping room state", reservation.RoomID)
		return false
	}

	freed, err := s.roomRepo.UpdateStateIf(ctx, reservation.RoomID, domain.RoomStateFree, domain.RoomStateReserved)
	if err != nil {
		s.logger.Error("tryFreeRoom: failed to free room=%d: %v", reservation.RoomID, err)
		return false
	}
	if !freed {
		s.logger.Info("tryFreeRoom: room=%d was not in reserved state, leaving untouched", reservation.RoomID)
	}

	return freed
}

func (s *Service) getReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

func (s *Service) mapUpdateError(op string, id int64, err error) error {
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Warn("%s: reservation id=%d not found during update", op, id)
		return ErrReservationNotFound
	}
	s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
