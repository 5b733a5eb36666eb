package domain

import "time"

// RoomState is the coarse state tag of a room. The reservation lifecycle only
// ever flips free<->reserved; the remaining states belong to other subsystems
// (housekeeping, room map) and must never be overwritten from here.
type RoomState string

const (
	RoomStateFree         RoomState = "free"
	RoomStateReserved     RoomState = "reserved"
	RoomStateOccupied     RoomState = "occupied"
	RoomStateMaintenance  RoomState = "maintenance"
	RoomStateOutOfService RoomState = "out_of_service"
)

// Room represents a hotel room with its pricing attributes.
type Room struct {
	ID      int64
	HotelID int64
	Name    string
	Type    string

	BasePrice           float64
	BaseOccupancy       int
	MaxOccupancy        int
	ExtraGuestPrice     float64
	AllowsHourlyBooking bool
	HourlyBasePrice     float64

	State  RoomState
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsReservable returns true if the room may accept new reservations.
func (r *Room) IsReservable() bool {
	return r.Active && r.State != RoomStateMaintenance && r.State != RoomStateOutOfService
}

// Pricing returns the pricing snapshot used by the pricing engine. Quotes are
// computed against this copy so later room edits do not change issued amounts.
func (r *Room) Pricing() RoomPricing {
	return RoomPricing{
		BasePrice:           r.BasePrice,
		BaseOccupancy:       r.BaseOccupancy,
		MaxOccupancy:        r.MaxOccupancy,
		ExtraGuestPrice:     r.ExtraGuestPrice,
		AllowsHourlyBooking: r.AllowsHourlyBooking,
		HourlyBasePrice:     r.HourlyBasePrice,
	}
}

// RoomPricing is the immutable pricing snapshot of a room.
type RoomPricing struct {
	BasePrice           float64
	BaseOccupancy       int
	MaxOccupancy        int
	ExtraGuestPrice     float64
	AllowsHourlyBooking bool
	HourlyBasePrice     float64
}
