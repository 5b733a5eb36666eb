package update_reservation

import (
	"fmt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Проверки времени заезда относительно "сейчас" нет: при редактировании
// допустимо двигать уже начавшуюся бронь.
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.GuestName == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	if len(req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName is too long", ErrInvalidInput)
	}

	if req.GuestPhone != nil && len(*req.GuestPhone) > domain.MaxGuestPhoneLength {
		return fmt.Errorf("%w: guestPhone is too long", ErrInvalidInput)
	}

	if req.GuestCount < 1 {
		return fmt.Errorf("%w: guestCount must be at least 1", ErrInvalidInput)
	}

	if req.ArrivalAt.IsZero() {
		return fmt.Errorf("%w: arrivalAt is required", ErrInvalidInput)
	}

	hasNights := req.Nights > 0
	hasCatalogEntry := req.StayDurationID != nil
	if hasNights == hasCatalogEntry {
		return fmt.Errorf("%w: exactly one of nights or stayDurationId must be set", ErrInvalidInput)
	}

	if hasNights && req.Nights > domain.MaxManualNights {
		return fmt.Errorf("%w: nights must not exceed %d", ErrInvalidInput, domain.MaxManualNights)
	}
	if hasCatalogEntry && *req.StayDurationID <= 0 {
		return fmt.Errorf("%w: stayDurationId must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes is too long", ErrInvalidInput)
	}

	return nil
}

// durationSpec строит спецификацию длительности из запроса
func durationSpec(req *Request) domain.DurationSpec {
	if req.Nights > 0 {
		return domain.DurationSpec{
			Kind:   domain.DurationManualNights,
			Nights: req.Nights,
		}
	}
	return domain.DurationSpec{
		Kind:           domain.DurationPredefinedStay,
		StayDurationID: *req.StayDurationID,
	}
}
