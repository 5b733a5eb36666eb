package get_hotel_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	hotelRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/hotel"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgNotFound       = "отель не найден"
)

// HotelConfigResponse HTTP response model
type HotelConfigResponse struct {
	HotelID      int64  `json:"hotelId"`
	Name         string `json:"name"`
	CheckoutHour string `json:"checkoutHour"` // "12:00"
}

type Handler struct {
	provider HotelConfigProvider
	logger   Logger
}

func NewHandler(provider HotelConfigProvider, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/config - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	cfg, err := h.provider.GetConfig(r.Context(), hotelID)
	if err != nil {
		switch {
		case errors.Is(err, hotelRepo.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id}/config - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /hotels/{id}/config - Failed to get config: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/config - Config retrieved: hotel_id=%d", hotelID)
	handlers.RespondJSON(w, http.StatusOK, &HotelConfigResponse{
		HotelID:      cfg.HotelID,
		Name:         cfg.Name,
		CheckoutHour: cfg.CheckoutHour.String(),
	})
}
