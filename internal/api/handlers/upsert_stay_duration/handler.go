package upsert_stay_duration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	"github.com/m04kA/HMS-ReservationService/internal/service/stays"
)

const (
	msgInvalidHotelID        = "некорректный ID отеля"
	msgInvalidStayDurationID = "некорректный ID записи каталога"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidInput          = "некорректные данные записи каталога"
)

type Handler struct {
	service StayService
	logger  Logger
}

func NewHandler(service StayService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/hotels/{hotelId}/stay-durations/{stayDurationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /hotels/{id}/stay-durations/{sid} - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	stayDurationID, err := strconv.ParseInt(vars["stayDurationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /hotels/{id}/stay-durations/{sid} - Invalid stay duration ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStayDurationID)
		return
	}

	var req UpsertStayDurationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /hotels/{id}/stay-durations/{sid} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.Upsert(r.Context(), req.ToDomain(stayDurationID, hotelID))
	if err != nil {
		switch {
		case errors.Is(err, stays.ErrInvalidInput):
			h.logger.Warn("PUT /hotels/{id}/stay-durations/{sid} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /hotels/{id}/stay-durations/{sid} - Failed to upsert: hotel_id=%d, stay_duration_id=%d, error=%v",
				hotelID, stayDurationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /hotels/{id}/stay-durations/{sid} - Stay duration saved: hotel_id=%d, stay_duration_id=%d",
		hotelID, stayDurationID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(saved))
}
