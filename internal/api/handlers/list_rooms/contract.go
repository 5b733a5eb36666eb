package list_rooms

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

type RoomService interface {
	ListByHotel(ctx context.Context, hotelID int64) ([]*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
