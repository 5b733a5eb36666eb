package upsert_stay_duration

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

type StayService interface {
	Upsert(ctx context.Context, entry *domain.StayDuration) (*domain.StayDuration, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
