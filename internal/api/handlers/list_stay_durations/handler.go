package list_stay_durations

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
)

const msgInvalidHotelID = "некорректный ID отеля"

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

// Handle GET /api/v1/hotels/{hotelId}/stay-durations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/stay-durations - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	entries, err := h.service.ListByHotel(r.Context(), hotelID)
	if err != nil {
		h.logger.Error("GET /hotels/{id}/stay-durations - Failed to list stay durations: hotel_id=%d, error=%v",
			hotelID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hotels/{id}/stay-durations - Retrieved %d stay durations: hotel_id=%d",
		len(entries), hotelID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(entries))
}
