package create_reservation

import (
	"time"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	createReservation "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/usecase/create_reservation"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	LocationID      int64   `json:"locationId"`
	RentalOptionID  int64   `json:"rentalOptionId"`
	ReservationDate string  `json:"reservationDate"` // "2026-07-15"
	StartTime       string  `json:"startTime"`       // "10:00"
	JetSkiIDs       []int64 `json:"jetSkiIds"`
	OwnerName       string  `json:"ownerName"`
	OwnerPhone      string  `json:"ownerPhone"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	Reference       string  `json:"reference"`
	LocationID      int64   `json:"locationId"`
	RentalOptionID  int64   `json:"rentalOptionId"`
	OptionName      string  `json:"optionName"`
	ReservationDate string  `json:"reservationDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	JetSkiIDs       []int64 `json:"jetSkiIds"`
	OwnerName       string  `json:"ownerName"`
	OwnerPhone      string  `json:"ownerPhone"`
	TotalPrice      float64 `json:"totalPrice"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	reservationDate, err := time.Parse(domain.DateFormat, r.ReservationDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		LocationID:      r.LocationID,
		RentalOptionID:  r.RentalOptionID,
		ReservationDate: reservationDate,
		StartTime:       startTime,
		JetSkiIDs:       r.JetSkiIDs,
		OwnerName:       r.OwnerName,
		OwnerPhone:      r.OwnerPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		Reference:       resp.Reference.String(),
		LocationID:      resp.LocationID,
		RentalOptionID:  resp.RentalOptionID,
		OptionName:      resp.OptionName,
		ReservationDate: resp.ReservationDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		JetSkiIDs:       resp.JetSkiIDs,
		OwnerName:       resp.OwnerName,
		OwnerPhone:      resp.OwnerPhone,
		TotalPrice:      resp.TotalPrice,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
