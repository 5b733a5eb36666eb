package stays

import (
	"context"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// StayRepository интерфейс репозитория каталога длительностей
type StayRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.StayDuration, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]*domain.StayDuration, error)
	Upsert(ctx context.Context, entry *domain.StayDuration) (*domain.StayDuration, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
