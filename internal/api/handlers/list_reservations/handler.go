package list_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations"
	"github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgInvalidStatus  = "некорректный статус брони"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/reservations?status=requested,confirmed
// Без фильтра возвращаются активные брони (requested, confirmed, checked_in).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/reservations - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	// Фильтр принимает и повторяющийся параметр, и список через запятую
	req := &models.ListReservationsRequest{HotelID: hotelID}
	for _, raw := range r.URL.Query()["status"] {
		for _, status := range strings.Split(raw, ",") {
			if status = strings.TrimSpace(status); status != "" {
				req.Statuses = append(req.Statuses, status)
			}
		}
	}

	result, err := h.service.ListByHotel(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("GET /hotels/{id}/reservations - Invalid status filter: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /hotels/{id}/reservations - Failed to list reservations: hotel_id=%d, error=%v",
				hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/reservations - Retrieved %d reservations: hotel_id=%d",
		result.Total, hotelID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
