package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	updateReservation "github.com/m04kA/HMS-ReservationService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidArrival       = "некорректный формат времени заезда, ожидается RFC 3339"
	msgNotFound             = "бронь не найдена"
	msgNotEditable          = "бронь уже нельзя редактировать"
	msgRoomNotFound         = "номер не найден"
	msgRoomNotReservable    = "номер не принимает брони"
	msgHourlyNotAllowed     = "почасовое бронирование недоступно в этом номере"
	msgInvalidDuration      = "некорректная длительность проживания"
	msgOccupancyExceeded    = "количество гостей превышает вместимость номера"
	msgUnresolvablePrice    = "не удалось рассчитать стоимость проживания"
	msgRoomNotAvailable     = "номер занят на выбранный интервал"
	msgAvailabilityFailure  = "не удалось проверить доступность номера"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse arrival time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArrival)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrNotEditable):
			h.logger.Warn("PUT /reservations/{id} - Not editable: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgNotEditable)

		case errors.Is(err, updateReservation.ErrRoomNotFound):
			h.logger.Warn("PUT /reservations/{id} - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateReservation.ErrRoomNotReservable):
			h.logger.Warn("PUT /reservations/{id} - Room not reservable: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotReservable)

		case errors.Is(err, updateReservation.ErrRoomNotAvailable):
			h.logger.Warn("PUT /reservations/{id} - Room not available: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotAvailable)

		case errors.Is(err, updateReservation.ErrAvailabilityCheckFailed):
			h.logger.Error("PUT /reservations/{id} - Availability check failed: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgAvailabilityFailure)

		case errors.Is(err, updateReservation.ErrHourlyNotAllowed):
			h.logger.Warn("PUT /reservations/{id} - Hourly booking not allowed: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgHourlyNotAllowed)

		case errors.Is(err, updateReservation.ErrInvalidDuration):
			h.logger.Warn("PUT /reservations/{id} - Invalid duration: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, updateReservation.ErrOccupancyExceeded):
			h.logger.Warn("PUT /reservations/{id} - Occupancy exceeded: room_id=%d, guests=%d", req.RoomID, req.GuestCount)
			handlers.RespondBadRequest(w, msgOccupancyExceeded)

		case errors.Is(err, updateReservation.ErrUnresolvablePrice):
			h.logger.Warn("PUT /reservations/{id} - Unresolvable price: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgUnresolvablePrice)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
