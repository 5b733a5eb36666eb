package list_rooms

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
)

const msgInvalidHotelID = "некорректный ID отеля"

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/rooms - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	rooms, err := h.service.ListByHotel(r.Context(), hotelID)
	if err != nil {
		h.logger.Error("GET /hotels/{id}/rooms - Failed to list rooms: hotel_id=%d, error=%v", hotelID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hotels/{id}/rooms - Retrieved %d rooms: hotel_id=%d", len(rooms), hotelID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(rooms))
}
