package models

import (
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// Request модели

// ListReservationsRequest запрос на получение броней отеля
type ListReservationsRequest struct {
	HotelID int64 `json:"hotelId"`

	// Statuses фильтр по статусам. Пустой список означает активные статусы
	// (requested, confirmed, checked_in).
	Statuses []string `json:"statuses,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса брони
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID      int64 `json:"id"`
	HotelID int64 `json:"hotelId"`
	RoomID  int64 `json:"roomId"`
	UserID  int64 `json:"userId"`

	GuestName  string  `json:"guestName"`
	GuestPhone *string `json:"guestPhone,omitempty"`
	GuestCount int     `json:"guestCount"`

	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
	Status  string    `json:"status"`

	DurationKind      string `json:"durationKind"`
	DurationMagnitude int    `json:"durationMagnitude"`
	StayDurationID    *int64 `json:"stayDurationId,omitempty"`

	BaseAmount       float64 `json:"baseAmount"`
	ExtraGuestAmount float64 `json:"extraGuestAmount"`
	TotalAmount      float64 `json:"totalAmount"`

	Notes  *string `json:"notes,omitempty"`
	Origin string  `json:"origin"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// CancelResponse результат отмены брони.
// RoomFreed=false означает, что бронь отменена, но номер остался
// зарезервированным (другая активная бронь или неудавшаяся проверка).
type CancelResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	RoomFreed   bool                 `json:"roomFreed"`
}

// FromDomainReservation конвертирует domain.Reservation в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                r.ID,
		HotelID:           r.HotelID,
		RoomID:            r.RoomID,
		UserID:            r.UserID,
		GuestName:         r.GuestName,
		GuestPhone:        r.GuestPhone,
		GuestCount:        r.GuestCount,
		StartAt:           r.StartAt,
		EndAt:             r.EndAt,
		Status:            string(r.Status),
		DurationKind:      string(r.DurationKind),
		DurationMagnitude: r.DurationMagnitude,
		StayDurationID:    r.StayDurationID,
		BaseAmount:        r.BaseAmount,
		ExtraGuestAmount:  r.ExtraGuestAmount,
		TotalAmount:       r.TotalAmount,
		Notes:             r.Notes,
		Origin:            r.Origin,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список броней в response
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}
