package domain

import "time"

// Night-equivalence window for predefined stays (22h..26h).
const (
	NightEquivalentMinMinutes = 22 * 60
	NightEquivalentMaxMinutes = 26 * 60
	MinutesPerNight           = 24 * 60
)

// Business validation constants.
const (
	MaxGuestNameLength  = 120
	MaxGuestPhoneLength = 30
	MaxNotesLength      = 500
	MaxManualNights     = 90

	// CreateGraceWindow tolerates clock skew on new bookings: an arrival up to
	// this far in the past is still accepted. Creates only; edits skip the check.
	CreateGraceWindow = 10 * time.Minute

	// ReservationListLimit bounds listing queries.
	ReservationListLimit = 100
)

// DefaultCheckoutHour applies when the hotel configuration carries no usable
// checkout hour.
const DefaultCheckoutHour = "12:00"

// OriginDirect marks reservations created through this service.
const OriginDirect = "direct"

// Time format constants.
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses lists the statuses that claim a room interval. Used by the
// availability authority and as the default listing filter.
var ActiveStatuses = []ReservationStatus{
	StatusRequested,
	StatusConfirmed,
	StatusCheckedIn,
}

// InactiveStatuses lists statuses that release the room interval.
var InactiveStatuses = []ReservationStatus{
	StatusCheckedOut,
	StatusCancelled,
	StatusNoShow,
}
