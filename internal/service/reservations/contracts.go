package reservations

import (
	"context"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByHotel(ctx context.Context, hotelID int64, statuses []domain.ReservationStatus, limit uint64) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) error
}

// RoomRepository интерфейс репозитория номеров.
// Сервису нужен только условный перевод состояния при освобождении номера.
type RoomRepository interface {
	UpdateStateIf(ctx context.Context, roomID int64, to, from domain.RoomState) (bool, error)
}

// AvailabilityGate интерфейс проверки доступности номера
type AvailabilityGate interface {
	HasConflict(ctx context.Context, roomID int64, start, end time.Time, excludeID *int64) (bool, error)
}

// EventPublisher интерфейс публикации сигнала об изменении данных броней
type EventPublisher interface {
	Publish()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
