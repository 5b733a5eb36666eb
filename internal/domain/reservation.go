package domain

import (
	"fmt"
	"time"
)

// ReservationStatus represents the status of a reservation.
type ReservationStatus string

const (
	StatusRequested  ReservationStatus = "requested"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no_show"
)

// DurationKind discriminates how the stay length of a reservation was specified.
type DurationKind string

const (
	// DurationManualNights means the stay was given as a whole number of nights,
	// resolved against the hotel checkout hour.
	DurationManualNights DurationKind = "manual_nights"

	// DurationPredefinedStay means the stay was taken from the hotel's
	// stay-duration catalog (elapsed minutes).
	DurationPredefinedStay DurationKind = "predefined_stay"
)

// Reservation represents a room reservation in the system.
type Reservation struct {
	ID      int64
	HotelID int64
	RoomID  int64
	UserID  int64

	GuestName  string
	GuestPhone *string
	GuestCount int

	StartAt time.Time
	EndAt   time.Time
	Status  ReservationStatus

	// DurationKind and DurationMagnitude record how the interval was derived:
	// nights for manual mode, minutes for a predefined stay.
	DurationKind      DurationKind
	DurationMagnitude int
	StayDurationID    *int64

	// Amounts are kept split for audit and reporting.
	BaseAmount       float64
	ExtraGuestAmount float64
	TotalAmount      float64

	Notes  *string
	Origin string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still claims its room interval.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusRequested ||
		r.Status == StatusConfirmed ||
		r.Status == StatusCheckedIn
}

// CanBeConfirmed returns true if the reservation can move to confirmed.
func (r *Reservation) CanBeConfirmed() bool {
	return r.Status == StatusRequested
}

// CanBeCancelled returns true if the reservation can be cancelled.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusRequested || r.Status == StatusConfirmed
}

// CanBeEdited returns true if the reservation details may still be changed.
func (r *Reservation) CanBeEdited() bool {
	return r.Status == StatusRequested || r.Status == StatusConfirmed
}

// IsTerminal returns true if no further transitions are possible.
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCheckedOut || r.Status == StatusCancelled || r.Status == StatusNoShow
}

// transitions enumerates the transitions this service owns. Check-in and
// check-out are driven by the room map service and are absent on purpose.
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusRequested: {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusNoShow},
}

// CanTransition reports whether this service may move a reservation from one
// status to another.
func CanTransition(from, to ReservationStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ParseReservationStatus validates a raw status string.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case StatusRequested, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled, StatusNoShow:
		return ReservationStatus(s), nil
	default:
		return "", fmt.Errorf("unknown reservation status %q", s)
	}
}
