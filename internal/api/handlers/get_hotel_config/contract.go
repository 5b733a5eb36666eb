package get_hotel_config

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

type HotelConfigProvider interface {
	GetConfig(ctx context.Context, hotelID int64) (*domain.HotelConfig, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
