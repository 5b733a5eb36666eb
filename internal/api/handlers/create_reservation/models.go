package create_reservation

import (
	"time"

	createReservation "github.com/m04kA/HMS-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	HotelID int64 `json:"hotelId"`
	RoomID  int64 `json:"roomId"`

	GuestName  string  `json:"guestName"`
	GuestPhone *string `json:"guestPhone,omitempty"`
	GuestCount int     `json:"guestCount"`

	ArrivalAt string `json:"arrivalAt"` // RFC 3339, например "2026-09-01T14:00:00+03:00"

	Nights         int    `json:"nights,omitempty"`
	StayDurationID *int64 `json:"stayDurationId,omitempty"`

	DepositAmount   float64 `json:"depositAmount,omitempty"`
	DepositMethodID *int64  `json:"depositMethodId,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID      int64 `json:"id"`
	HotelID int64 `json:"hotelId"`
	RoomID  int64 `json:"roomId"`
	UserID  int64 `json:"userId"`

	GuestName  string  `json:"guestName"`
	GuestPhone *string `json:"guestPhone,omitempty"`
	GuestCount int     `json:"guestCount"`

	StartAt string `json:"startAt"`
	EndAt   string `json:"endAt"`
	Status  string `json:"status"`

	DurationKind      string `json:"durationKind"`
	DurationMagnitude int    `json:"durationMagnitude"`
	StayDurationID    *int64 `json:"stayDurationId,omitempty"`

	BaseAmount       float64 `json:"baseAmount"`
	ExtraGuestAmount float64 `json:"extraGuestAmount"`
	TotalAmount      float64 `json:"totalAmount"`

	Notes  *string `json:"notes,omitempty"`
	Origin string  `json:"origin"`

	RoomMarked      bool `json:"roomMarked"`
	DepositRecorded bool `json:"depositRecorded"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	arrivalAt, err := time.Parse(time.RFC3339, r.ArrivalAt)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		HotelID:         r.HotelID,
		RoomID:          r.RoomID,
		UserID:          userID,
		GuestName:       r.GuestName,
		GuestPhone:      r.GuestPhone,
		GuestCount:      r.GuestCount,
		ArrivalAt:       arrivalAt,
		Nights:          r.Nights,
		StayDurationID:  r.StayDurationID,
		DepositAmount:   r.DepositAmount,
		DepositMethodID: r.DepositMethodID,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                resp.ID,
		HotelID:           resp.HotelID,
		RoomID:            resp.RoomID,
		UserID:            resp.UserID,
		GuestName:         resp.GuestName,
		GuestPhone:        resp.GuestPhone,
		GuestCount:        resp.GuestCount,
		StartAt:           resp.StartAt.Format(time.RFC3339),
		EndAt:             resp.EndAt.Format(time.RFC3339),
		Status:            resp.Status,
		DurationKind:      resp.DurationKind,
		DurationMagnitude: resp.DurationMagnitude,
		StayDurationID:    resp.StayDurationID,
		BaseAmount:        resp.BaseAmount,
		ExtraGuestAmount:  resp.ExtraGuestAmount,
		TotalAmount:       resp.TotalAmount,
		Notes:             resp.Notes,
		Origin:            resp.Origin,
		RoomMarked:        resp.RoomMarked,
		DepositRecorded:   resp.DepositRecorded,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
