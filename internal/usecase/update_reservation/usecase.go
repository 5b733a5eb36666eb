package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/internal/duration"
	hotelRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/hotel"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/HMS-ReservationService/internal/pricing"
	"github.com/m04kA/HMS-ReservationService/internal/service/availability"
)

// UseCase use case для редактирования брони
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	hotelRepo       HotelRepository
	stayCatalog     StayCatalog
	gate            AvailabilityGate
	txManager       TransactionManager
	events          EventPublisher
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	hotelRepo HotelRepository,
	stayCatalog StayCatalog,
	gate AvailabilityGate,
	txManager TransactionManager,
	events EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		hotelRepo:       hotelRepo,
		stayCatalog:     stayCatalog,
		gate:            gate,
		txManager:       txManager,
		events:          events,
		logger:          logger,
	}
}

// Execute выполняет use case редактирования брони.
// Интервал и стоимость пересчитываются заново, проверка доступности исключает
// собственную бронь и выполняется в одной сериализуемой транзакции с записью.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d, room=%d, guests=%d, arrival=%s",
		req.ID, req.RoomID, req.GuestCount, req.ArrivalAt.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущую бронь
	existing, err := uc.reservationRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if !existing.CanBeEdited() {
		uc.logger.Warn("UpdateReservation: reservation id=%d is not editable, status=%s", req.ID, existing.Status)
		return nil, ErrNotEditable
	}

	// 3. Получаем номер (возможно, новый)
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("UpdateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if room.HotelID != existing.HotelID {
		uc.logger.Warn("UpdateReservation: room id=%d belongs to hotel=%d, reservation hotel=%d",
			req.RoomID, room.HotelID, existing.HotelID)
		return nil, ErrRoomNotFound
	}

	if req.RoomID != existing.RoomID && !room.IsReservable() {
		uc.logger.Warn("UpdateReservation: room id=%d is not reservable, state=%s, active=%v",
			req.RoomID, room.State, room.Active)
		return nil, ErrRoomNotReservable
	}

	// 4. Получаем конфигурацию отеля и каталог длительностей
	hotelCfg, err := uc.hotelRepo.GetConfig(ctx, existing.HotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			uc.logger.Error("UpdateReservation: hotel id=%d not found for reservation id=%d", existing.HotelID, req.ID)
			return nil, fmt.Errorf("%w: hotel not found", ErrInternal)
		}
		uc.logger.Error("UpdateReservation: failed to get hotel config id=%d: %v", existing.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel config: %v", ErrInternal, err)
	}

	catalog, err := uc.stayCatalog.CatalogByHotel(ctx, existing.HotelID)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to get stay catalog for hotel=%d: %v", existing.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get stay catalog: %v", ErrInternal, err)
	}

	// 5. Разрешаем новый интервал проживания
	spec := durationSpec(req)
	resolved, err := duration.Resolve(req.ArrivalAt, spec, hotelCfg.CheckoutHour, catalog)
	if err != nil {
		uc.logger.Warn("UpdateReservation: failed to resolve stay interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	// 6. Проверяем разрешение на почасовое бронирование
	var stayEntry *domain.StayDuration
	if spec.Kind == domain.DurationPredefinedStay {
		stayEntry = catalog[spec.StayDurationID]
		if !room.AllowsHourlyBooking && !duration.IsOvernightStay(spec.StayDurationID, catalog) {
			uc.logger.Warn("UpdateReservation: room id=%d does not allow hourly booking, stay duration id=%d",
				req.RoomID, spec.StayDurationID)
			return nil, ErrHourlyNotAllowed
		}
	}

	// 7. Пересчитываем стоимость
	quote, err := pricing.Quote(room.Pricing(), req.GuestCount, resolved, stayEntry)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrOccupancyExceeded):
			uc.logger.Warn("UpdateReservation: %d guests exceed capacity of room id=%d", req.GuestCount, req.RoomID)
			return nil, ErrOccupancyExceeded
		case errors.Is(err, pricing.ErrUnresolvablePrice):
			uc.logger.Warn("UpdateReservation: no pricing rule applies for room id=%d", req.RoomID)
			return nil, ErrUnresolvablePrice
		default:
			uc.logger.Warn("UpdateReservation: pricing failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	updated := *existing
	updated.RoomID = req.RoomID
	updated.GuestName = req.GuestName
	updated.GuestPhone = req.GuestPhone
	updated.GuestCount = req.GuestCount
	updated.StartAt = resolved.StartAt
	updated.EndAt = resolved.EndAt
	updated.DurationKind = resolved.Kind
	updated.DurationMagnitude = resolved.Magnitude
	updated.StayDurationID = req.StayDurationID
	updated.BaseAmount = quote.BaseAmount
	updated.ExtraGuestAmount = quote.ExtraGuestAmount
	updated.TotalAmount = quote.Total()
	updated.Notes = req.Notes

	// 8. Проверка доступности (без собственной брони) и запись
	// в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.gate.EnsureAvailable(txCtx, req.RoomID, resolved.StartAt, resolved.EndAt, &req.ID); err != nil {
			return err
		}

		if err := uc.reservationRepo.Update(txCtx, &updated); err != nil {
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, availability.ErrConflict):
			uc.logger.Warn("UpdateReservation: room id=%d is taken on requested interval", req.RoomID)
			return nil, ErrRoomNotAvailable
		case errors.Is(err, availability.ErrCheckFailed):
			uc.logger.Error("UpdateReservation: availability check failed for room id=%d: %v", req.RoomID, err)
			return nil, ErrAvailabilityCheckFailed
		default:
			return nil, err
		}
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d, total=%.2f",
		updated.ID, updated.TotalAmount)

	// 9. Сигнализируем об изменении данных броней
	uc.events.Publish()

	return &Response{
		ID:                updated.ID,
		HotelID:           updated.HotelID,
		RoomID:            updated.RoomID,
		UserID:            updated.UserID,
		GuestName:         updated.GuestName,
		GuestPhone:        updated.GuestPhone,
		GuestCount:        updated.GuestCount,
		StartAt:           updated.StartAt,
		EndAt:             updated.EndAt,
		Status:            string(updated.Status),
		DurationKind:      string(updated.DurationKind),
		DurationMagnitude: updated.DurationMagnitude,
		StayDurationID:    updated.StayDurationID,
		BaseAmount:        updated.BaseAmount,
		ExtraGuestAmount:  updated.ExtraGuestAmount,
		TotalAmount:       updated.TotalAmount,
		Notes:             updated.Notes,
		Origin:            updated.Origin,
		CreatedAt:         updated.CreatedAt,
		UpdatedAt:         updated.UpdatedAt,
	}, nil
}
