package list_stay_durations

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

type StayService interface {
	ListByHotel(ctx context.Context, hotelID int64) ([]*domain.StayDuration, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
