package list_rooms

import (
	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// RoomResponse HTTP response model
type RoomResponse struct {
	ID      int64  `json:"id"`
	HotelID int64  `json:"hotelId"`
	Name    string `json:"name"`
	Type    string `json:"type"`

	BasePrice           float64 `json:"basePrice"`
	BaseOccupancy       int     `json:"baseOccupancy"`
	MaxOccupancy        int     `json:"maxOccupancy"`
	ExtraGuestPrice     float64 `json:"extraGuestPrice"`
	AllowsHourlyBooking bool    `json:"allowsHourlyBooking"`
	HourlyBasePrice     float64 `json:"hourlyBasePrice"`

	State      string `json:"state"`
	Reservable bool   `json:"reservable"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
	Total int             `json:"total"`
}

// FromDomainList конвертирует номера в HTTP response
func FromDomainList(rooms []*domain.Room) *RoomListResponse {
	items := make([]*RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		items = append(items, &RoomResponse{
			ID:                  room.ID,
			HotelID:             room.HotelID,
			Name:                room.Name,
			Type:                room.Type,
			BasePrice:           room.BasePrice,
			BaseOccupancy:       room.BaseOccupancy,
			MaxOccupancy:        room.MaxOccupancy,
			ExtraGuestPrice:     room.ExtraGuestPrice,
			AllowsHourlyBooking: room.AllowsHourlyBooking,
			HourlyBasePrice:     room.HourlyBasePrice,
			State:               string(room.State),
			Reservable:          room.IsReservable(),
		})
	}
	return &RoomListResponse{
		Rooms: items,
		Total: len(items),
	}
}
