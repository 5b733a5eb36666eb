package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/internal/duration"
	hotelRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/hotel"
	roomRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/room"
	"github.com/m04kA/HMS-ReservationService/internal/pricing"
	"github.com/m04kA/HMS-ReservationService/internal/service/availability"
)

// UseCase use case для создания брони
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	hotelRepo       HotelRepository
	paymentRepo     PaymentRepository
	stayCatalog     StayCatalog
	gate            AvailabilityGate
	txManager       TransactionManager
	events          EventPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	hotelRepo HotelRepository,
	paymentRepo PaymentRepository,
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
		paymentRepo:     paymentRepo,
		stayCatalog:     stayCatalog,
		gate:            gate,
		txManager:       txManager,
		events:          events,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони.
// Проверка доступности и вставка брони идут в одной сериализуемой транзакции,
// чтобы два параллельных запроса не забронировали один номер на один интервал.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: hotel=%d, room=%d, user=%d, guests=%d, arrival=%s",
		req.HotelID, req.RoomID, req.UserID, req.GuestCount, req.ArrivalAt.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем время заезда с допуском на расхождение часов
	now := uc.timeProvider.Now()
	if err := validateArrival(req.ArrivalAt, now); err != nil {
		uc.logger.Warn("CreateReservation: arrival=%s is in the past (now=%s)",
			req.ArrivalAt.Format("2006-01-02 15:04"), now.Format("2006-01-02 15:04"))
		return nil, err
	}

	// 3. Получаем номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if room.HotelID != req.HotelID {
		uc.logger.Warn("CreateReservation: room id=%d belongs to hotel=%d, not hotel=%d",
			req.RoomID, room.HotelID, req.HotelID)
		return nil, ErrRoomNotFound
	}

	if !room.IsReservable() {
		uc.logger.Warn("CreateReservation: room id=%d is not reservable, state=%s, active=%v",
			req.RoomID, room.State, room.Active)
		return nil, ErrRoomNotReservable
	}

	// 4. Получаем конфигурацию отеля (checkout-час)
	hotelCfg, err := uc.hotelRepo.GetConfig(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrHotelNotFound) {
			uc.logger.Warn("CreateReservation: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("CreateReservation: failed to get hotel config id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel config: %v", ErrInternal, err)
	}

	// 5. Получаем каталог длительностей отеля
	catalog, err := uc.stayCatalog.CatalogByHotel(ctx, req.HotelID)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get stay catalog for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get stay catalog: %v", ErrInternal, err)
	}

	// 6. Разрешаем интервал проживания
	spec := durationSpec(req)
	resolved, err := duration.Resolve(req.ArrivalAt, spec, hotelCfg.CheckoutHour, catalog)
	if err != nil {
		uc.logger.Warn("CreateReservation: failed to resolve stay interval: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	// 7. Почасовое бронирование разрешено не во всех номерах.
	// Ночной эквивалент (22-26 часов) проходит всегда.
	var stayEntry *domain.StayDuration
	if spec.Kind == domain.DurationPredefinedStay {
		stayEntry = catalog[spec.StayDurationID]
		if !room.AllowsHourlyBooking && !duration.IsOvernightStay(spec.StayDurationID, catalog) {
			uc.logger.Warn("CreateReservation: room id=%d does not allow hourly booking, stay duration id=%d",
				req.RoomID, spec.StayDurationID)
			return nil, ErrHourlyNotAllowed
		}
	}

	// 8. Считаем стоимость
	quote, err := pricing.Quote(room.Pricing(), req.GuestCount, resolved, stayEntry)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrOccupancyExceeded):
			uc.logger.Warn("CreateReservation: %d guests exceed capacity of room id=%d", req.GuestCount, req.RoomID)
			return nil, ErrOccupancyExceeded
		case errors.Is(err, pricing.ErrUnresolvablePrice):
			uc.logger.Warn("CreateReservation: no pricing rule applies for room id=%d", req.RoomID)
			return nil, ErrUnresolvablePrice
		default:
			uc.logger.Warn("CreateReservation: pricing failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	reservation := &domain.Reservation{
		HotelID:           req.HotelID,
		RoomID:            req.RoomID,
		UserID:            req.UserID,
		GuestName:         req.GuestName,
		GuestPhone:        req.GuestPhone,
		GuestCount:        req.GuestCount,
		StartAt:           resolved.StartAt,
		EndAt:             resolved.EndAt,
		Status:            domain.StatusRequested,
		DurationKind:      resolved.Kind,
		DurationMagnitude: resolved.Magnitude,
		StayDurationID:    req.StayDurationID,
		BaseAmount:        quote.BaseAmount,
		ExtraGuestAmount:  quote.ExtraGuestAmount,
		TotalAmount:       quote.Total(),
		Notes:             req.Notes,
		Origin:            domain.OriginDirect,
	}

	// 9. Проверка доступности и вставка в одной сериализуемой транзакции
	var created *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.gate.EnsureAvailable(txCtx, req.RoomID, resolved.StartAt, resolved.EndAt, nil); err != nil {
			return err
		}

		result, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		created = result
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, availability.ErrConflict):
			uc.logger.Warn("CreateReservation: room id=%d is taken on requested interval", req.RoomID)
			return nil, ErrRoomNotAvailable
		case errors.Is(err, availability.ErrCheckFailed):
			uc.logger.Error("CreateReservation: availability check failed for room id=%d: %v", req.RoomID, err)
			return nil, ErrAvailabilityCheckFailed
		default:
			return nil, err
		}
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, total=%.2f",
		created.ID, created.TotalAmount)

	// 10. Побочные эффекты после фиксации брони: депозит и пометка номера.
	// Выполняются параллельно и не откатывают созданную бронь при неудаче.
	roomMarked, depositRecorded := uc.runSideEffects(ctx, req, created)

	// 11. Сигнализируем об изменении данных броней
	uc.events.Publish()

	return &Response{
		ID:                created.ID,
		HotelID:           created.HotelID,
		RoomID:            created.RoomID,
		UserID:            created.UserID,
		GuestName:         created.GuestName,
		GuestPhone:        created.GuestPhone,
		GuestCount:        created.GuestCount,
		StartAt:           created.StartAt,
		EndAt:             created.EndAt,
		Status:            string(created.Status),
		DurationKind:      string(created.DurationKind),
		DurationMagnitude: created.DurationMagnitude,
		StayDurationID:    created.StayDurationID,
		BaseAmount:        created.BaseAmount,
		ExtraGuestAmount:  created.ExtraGuestAmount,
		TotalAmount:       created.TotalAmount,
		Notes:             created.Notes,
		Origin:            created.Origin,
		RoomMarked:        roomMarked,
		DepositRecorded:   depositRecorded,
		CreatedAt:         created.CreatedAt,
		UpdatedAt:         created.UpdatedAt,
	}, nil
}

// runSideEffects записывает депозит и помечает номер зарезервированным.
// Бронь уже зафиксирована: неудача любого эффекта логируется и отражается
// во флагах ответа, но не считается ошибкой создания.
func (uc *UseCase) runSideEffects(ctx context.Context, req *Request, created *domain.Reservation) (roomMarked, depositRecorded bool) {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		marked, err := uc.roomRepo.UpdateStateIf(gCtx, created.RoomID, domain.RoomStateReserved, domain.RoomStateFree)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to mark room id=%d as reserved: %v", created.RoomID, err)
			return nil
		}
		if !marked {
			uc.logger.Info("CreateReservation: room id=%d was not in free state, leaving untouched", created.RoomID)
		}
		roomMarked = marked
		return nil
	})

	if req.DepositAmount > 0 {
		g.Go(func() error {
			payment := &domain.Payment{
				ReservationID: created.ID,
				HotelID:       created.HotelID,
				UserID:        created.UserID,
				Amount:        req.DepositAmount,
				MethodID:      *req.DepositMethodID,
			}
			if _, err := uc.paymentRepo.Create(gCtx, payment); err != nil {
				uc.logger.Error("CreateReservation: failed to record deposit for reservation id=%d: %v", created.ID, err)
				return nil
			}
			depositRecorded = true
			return nil
		})
	}

	// Ошибки проглочены внутри горутин, Wait здесь всегда nil
	_ = g.Wait()

	return roomMarked, depositRecorded
}
