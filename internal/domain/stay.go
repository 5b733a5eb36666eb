package domain

import (
	"time"

	"github.com/m04kA/HMS-ReservationService/pkg/types"
)

// StayDuration is a predefined catalog entry owned by hotel configuration,
// e.g. "3-hour stay" or "Night package". Read-only to the booking core.
type StayDuration struct {
	ID      int64
	HotelID int64
	Name    string
	Minutes int

	// Price is the flat package price. Nil means no package price is set and
	// the hourly fallback applies.
	Price *float64

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsNightEquivalent classifies an entry as functionally a "night": its length
// falls in the 22-26 hour window. Night-equivalent entries are surcharged per
// night and are allowed on rooms that reject hourly bookings.
func (s *StayDuration) IsNightEquivalent() bool {
	return s.Minutes >= NightEquivalentMinMinutes && s.Minutes <= NightEquivalentMaxMinutes
}

// HasPackagePrice returns true if the entry carries a usable flat price.
func (s *StayDuration) HasPackagePrice() bool {
	return s.Price != nil && *s.Price >= 0
}

// DurationSpec is the tagged duration specification of a booking request.
// Kind selects which field is read; the other is ignored.
type DurationSpec struct {
	Kind           DurationKind
	Nights         int
	StayDurationID int64
}

// ResolvedStay is a concrete [StartAt, EndAt) interval derived from a
// DurationSpec. Invariant: EndAt > StartAt.
type ResolvedStay struct {
	StartAt time.Time
	EndAt   time.Time

	// Kind and Magnitude echo the originating spec: nights for manual mode,
	// minutes for a predefined stay.
	Kind      DurationKind
	Magnitude int
}

// Quote is the monetary outcome of pricing a resolved stay.
type Quote struct {
	BaseAmount       float64
	ExtraGuestAmount float64
}

// Total returns the amount to persist on the reservation.
func (q Quote) Total() float64 {
	return q.BaseAmount + q.ExtraGuestAmount
}

// HotelConfig is the per-hotel configuration the booking core reads.
type HotelConfig struct {
	HotelID      int64
	Name         string
	CheckoutHour types.TimeString
}

// Payment is an append-only deposit/payment record attached to a reservation.
type Payment struct {
	ID            int64
	ReservationID int64
	HotelID       int64
	UserID        int64
	Amount        float64
	MethodID      int64
	PaidAt        time.Time
}
