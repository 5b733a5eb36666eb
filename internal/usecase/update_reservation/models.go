package update_reservation

import (
	"time"
)

// Request модель запроса на редактирование брони.
// Отель, сотрудник и статус брони неизменяемы: отель и сотрудник фиксируются
// при создании, статусом управляет жизненный цикл.
type Request struct {
	ID int64 // ID редактируемой брони

	RoomID int64 // ID номера (можно перенести бронь в другой номер)

	GuestName  string  // Имя гостя
	GuestPhone *string // Телефон гостя (опционально)
	GuestCount int     // Количество гостей

	ArrivalAt time.Time // Время заезда

	// Спецификация длительности: ровно один из режимов
	Nights         int
	StayDurationID *int64

	Notes *string // Заметки (опционально)
}

// Response модель ответа с обновлённой бронью
type Response struct {
	ID      int64
	HotelID int64
	RoomID  int64
	UserID  int64

	GuestName  string
	GuestPhone *string
	GuestCount int

	StartAt time.Time
	EndAt   time.Time
	Status  string

	DurationKind      string
	DurationMagnitude int
	StayDurationID    *int64

	BaseAmount       float64
	ExtraGuestAmount float64
	TotalAmount      float64

	Notes  *string
	Origin string

	CreatedAt time.Time
	UpdatedAt time.Time
}
