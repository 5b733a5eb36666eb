package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	UpdateStateIf(ctx context.Context, roomID int64, to, from domain.RoomState) (bool, error)
}

// HotelRepository интерфейс репозитория конфигурации отеля
type HotelRepository interface {
	GetConfig(ctx context.Context, hotelID int64) (*domain.HotelConfig, error)
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
}

// StayCatalog интерфейс каталога длительностей проживания
type StayCatalog interface {
	CatalogByHotel(ctx context.Context, hotelID int64) (map[int64]*domain.StayDuration, error)
}

// AvailabilityGate интерфейс проверки доступности номера
type AvailabilityGate interface {
	EnsureAvailable(ctx context.Context, roomID int64, start, end time.Time, excludeID *int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации сигнала об изменении данных броней
type EventPublisher interface {
	Publish()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
