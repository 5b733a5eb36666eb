package upsert_stay_duration

import (
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// UpsertStayDurationRequest HTTP request model
type UpsertStayDurationRequest struct {
	Name    string   `json:"name"`
	Minutes int      `json:"minutes"`
	Price   *float64 `json:"price,omitempty"`
	Active  bool     `json:"active"`
}

// StayDurationResponse HTTP response model
type StayDurationResponse struct {
	ID      int64    `json:"id"`
	HotelID int64    `json:"hotelId"`
	Name    string   `json:"name"`
	Minutes int      `json:"minutes"`
	Price   *float64 `json:"price,omitempty"`
	Active  bool     `json:"active"`

	NightEquivalent bool `json:"nightEquivalent"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToDomain конвертирует HTTP запрос в domain модель
func (r *UpsertStayDurationRequest) ToDomain(id, hotelID int64) *domain.StayDuration {
	return &domain.StayDuration{
		ID:      id,
		HotelID: hotelID,
		Name:    r.Name,
		Minutes: r.Minutes,
		Price:   r.Price,
		Active:  r.Active,
	}
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(entry *domain.StayDuration) *StayDurationResponse {
	return &StayDurationResponse{
		ID:              entry.ID,
		HotelID:         entry.HotelID,
		Name:            entry.Name,
		Minutes:         entry.Minutes,
		Price:           entry.Price,
		Active:          entry.Active,
		NightEquivalent: entry.IsNightEquivalent(),
		CreatedAt:       entry.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       entry.UpdatedAt.Format(time.RFC3339),
	}
}
