package models

import (
	"time"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
)

// Request модели

// GetLocationReservationsRequest запрос на получение броней локации
type GetLocationReservationsRequest struct {
	LocationID      int64      `json:"locationId"`
	Date            *time.Time `json:"date,omitempty"`            // Фильтр по дате (опционально)
	JetSkiID        *int64     `json:"jetSkiId,omitempty"`        // Только брони, занимающие гидроцикл (опционально)
	IncludeFinished bool       `json:"includeFinished,omitempty"` // Включить завершенные брони
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetLocationReservationsRequest) ToDomainFilter() domain.LocationReservationsFilter {
	return domain.LocationReservationsFilter{
		LocationID:      r.LocationID,
		Date:            r.Date,
		JetSkiID:        r.JetSkiID,
		IncludeFinished: r.IncludeFinished,
	}
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID                 int64   `json:"id"`
	Reference          string  `json:"reference"` // Публичный код брони
	LocationID         int64   `json:"locationId"`
	RentalOptionID     int64   `json:"rentalOptionId"`
	OptionName         string  `json:"optionName"`
	ReservationDate    string  `json:"reservationDate"` // "2026-07-15"
	StartTime          string  `json:"startTime"`       // "10:00"
	EndTime            string  `json:"endTime"`         // "11:00"
	DurationMinutes    int     `json:"durationMinutes"`
	JetSkiIDs          []int64 `json:"jetSkiIds"`
	IsCurrentlyRunning bool    `json:"isCurrentlyRunning"`
	HasFinished        bool    `json:"hasFinished"`
	OwnerName          string  `json:"ownerName"`
	OwnerPhone         string  `json:"ownerPhone"`
	TotalPrice         float64 `json:"totalPrice"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	endTime := ""
	if end, err := res.StartTime.AddMinutes(res.DurationMinutes); err == nil {
		endTime = string(end)
	}

	return &ReservationResponse{
		ID:                 res.ID,
		Reference:          res.Reference.String(),
		LocationID:         res.LocationID,
		RentalOptionID:     res.RentalOptionID,
		OptionName:         res.OptionName,
		ReservationDate:    res.ReservationDate.Format(domain.DateFormat),
		StartTime:          string(res.StartTime),
		EndTime:            endTime,
		DurationMinutes:    res.DurationMinutes,
		JetSkiIDs:          res.JetSkiIDs,
		IsCurrentlyRunning: res.IsCurrentlyRunning,
		HasFinished:        res.HasFinished,
		OwnerName:          res.OwnerName,
		OwnerPhone:         res.OwnerPhone,
		TotalPrice:         res.TotalPrice,
		CreatedAt:          res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          res.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список domain моделей в response
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]*ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		items = append(items, FromDomainReservation(res))
	}

	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}
