package list_stay_durations

import (
	"github.com/m04kA/HMS-ReservationService/internal/domain"
)

// StayDurationResponse HTTP response model
type StayDurationResponse struct {
	ID      int64    `json:"id"`
	HotelID int64    `json:"hotelId"`
	Name    string   `json:"name"`
	Minutes int      `json:"minutes"`
	Price   *float64 `json:"price,omitempty"`

	// NightEquivalent true для записей в окне 22-26 часов: такие пакеты
	// тарифицируются как ночь и разрешены в номерах без почасовой брони
	NightEquivalent bool `json:"nightEquivalent"`
}

// StayDurationListResponse ответ со списком записей каталога
type StayDurationListResponse struct {
	StayDurations []*StayDurationResponse `json:"stayDurations"`
	Total         int                     `json:"total"`
}

// FromDomainList конвертирует записи каталога в HTTP response
func FromDomainList(entries []*domain.StayDuration) *StayDurationListResponse {
	items := make([]*StayDurationResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, &StayDurationResponse{
			ID:              entry.ID,
			HotelID:         entry.HotelID,
			Name:            entry.Name,
			Minutes:         entry.Minutes,
			Price:           entry.Price,
			NightEquivalent: entry.IsNightEquivalent(),
		})
	}
	return &StayDurationListResponse{
		StayDurations: items,
		Total:         len(items),
	}
}
