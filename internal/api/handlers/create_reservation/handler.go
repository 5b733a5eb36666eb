package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	"github.com/m04kA/HMS-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/HMS-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidArrival      = "некорректный формат времени заезда, ожидается RFC 3339"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgArrivalInPast       = "время заезда в прошлом"
	msgRoomNotFound        = "номер не найден"
	msgHotelNotFound       = "отель не найден"
	msgRoomNotReservable   = "номер не принимает брони"
	msgHourlyNotAllowed    = "почасовое бронирование недоступно в этом номере"
	msgInvalidDuration     = "некорректная длительность проживания"
	msgOccupancyExceeded   = "количество гостей превышает вместимость номера"
	msgUnresolvablePrice   = "не удалось рассчитать стоимость проживания"
	msgRoomNotAvailable    = "номер занят на выбранный интервал"
	msgAvailabilityFailure = "не удалось проверить доступность номера"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse arrival time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArrival)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrRoomNotAvailable):
			h.logger.Warn("POST /reservations - Room not available: room_id=%d, user_id=%d", req.RoomID, userID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotAvailable)

		case errors.Is(err, createReservation.ErrAvailabilityCheckFailed):
			h.logger.Error("POST /reservations - Availability check failed: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgAvailabilityFailure)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrHotelNotFound):
			h.logger.Warn("POST /reservations - Hotel not found: hotel_id=%d", req.HotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, createReservation.ErrRoomNotReservable):
			h.logger.Warn("POST /reservations - Room not reservable: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotReservable)

		case errors.Is(err, createReservation.ErrArrivalInPast):
			h.logger.Warn("POST /reservations - Arrival in past: room_id=%d, user_id=%d", req.RoomID, userID)
			handlers.RespondBadRequest(w, msgArrivalInPast)

		case errors.Is(err, createReservation.ErrHourlyNotAllowed):
			h.logger.Warn("POST /reservations - Hourly booking not allowed: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgHourlyNotAllowed)

		case errors.Is(err, createReservation.ErrInvalidDuration):
			h.logger.Warn("POST /reservations - Invalid duration: room_id=%d, user_id=%d", req.RoomID, userID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createReservation.ErrOccupancyExceeded):
			h.logger.Warn("POST /reservations - Occupancy exceeded: room_id=%d, guests=%d", req.RoomID, req.GuestCount)
			handlers.RespondBadRequest(w, msgOccupancyExceeded)

		case errors.Is(err, createReservation.ErrUnresolvablePrice):
			h.logger.Warn("POST /reservations - Unresolvable price: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgUnresolvablePrice)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: room_id=%d, user_id=%d, error=%v",
				req.RoomID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, room_id=%d, user_id=%d",
		result.ID, req.RoomID, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
