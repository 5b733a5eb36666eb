package create_reservation

import (
	"time"
)

// Request модель запроса на создание брони
type Request struct {
	HotelID int64 // ID отеля
	RoomID  int64 // ID номера
	UserID  int64 // ID сотрудника, оформляющего бронь

	GuestName  string  // Имя гостя
	GuestPhone *string // Телефон гостя (опционально)
	GuestCount int     // Количество гостей

	ArrivalAt time.Time // Время заезда

	// Спецификация длительности: ровно один из режимов.
	// Nights > 0 означает ручной режим (целые ночи до checkout-часа отеля),
	// StayDurationID != nil означает запись каталога длительностей.
	Nights         int
	StayDurationID *int64

	// DepositAmount > 0 означает внесённый при оформлении депозит,
	// DepositMethodID обязателен в этом случае.
	DepositAmount   float64
	DepositMethodID *int64

	Notes *string // Заметки (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID      int64 // ID созданной брони
	HotelID int64 // ID отеля
	RoomID  int64 // ID номера
	UserID  int64 // ID сотрудника

	GuestName  string  // Имя гостя
	GuestPhone *string // Телефон гостя
	GuestCount int     // Количество гостей

	StartAt time.Time // Время заезда
	EndAt   time.Time // Время выезда
	Status  string    // Статус брони

	DurationKind      string // Режим длительности
	DurationMagnitude int    // Ночи либо минуты
	StayDurationID    *int64 // Запись каталога (для predefined_stay)

	BaseAmount       float64 // Базовая стоимость
	ExtraGuestAmount float64 // Доплата за дополнительных гостей
	TotalAmount      float64 // Итоговая стоимость

	Notes  *string // Заметки
	Origin string  // Канал оформления

	// Результаты побочных эффектов после фиксации брони
	RoomMarked      bool // Номер переведён free -> reserved
	DepositRecorded bool // Депозит записан

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
