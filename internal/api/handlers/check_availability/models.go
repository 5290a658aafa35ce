package check_availability

import (
	"time"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	checkAvailability "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/usecase/check_availability"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	Date                 string  `json:"date"`      // "2026-07-15"
	StartTime            string  `json:"startTime"` // "10:00"
	EndTime              string  `json:"endTime"`   // "11:00"
	JetSkiIDs            []int64 `json:"jetSkiIds"`
	ExcludeReservationID *int64  `json:"excludeReservationId,omitempty"` // Собственная бронь при редактировании
}

// JetSkiAvailabilityResponse доступность одного гидроцикла
type JetSkiAvailabilityResponse struct {
	JetSkiID  int64 `json:"jetSkiId"`
	Available bool  `json:"available"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	AllAvailable   bool                         `json:"allAvailable"`
	ConflictingIDs []int64                      `json:"conflictingIds"`
	Results        []JetSkiAvailabilityResponse `json:"results"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		Date:                 date,
		StartTime:            startTime,
		EndTime:              endTime,
		JetSkiIDs:            r.JetSkiIDs,
		ExcludeReservationID: r.ExcludeReservationID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	results := make([]JetSkiAvailabilityResponse, 0, len(resp.Results))
	for _, res := range resp.Results {
		results = append(results, JetSkiAvailabilityResponse{
			JetSkiID:  res.JetSkiID,
			Available: res.Available,
		})
	}

	return &CheckAvailabilityResponse{
		AllAvailable:   resp.AllAvailable(),
		ConflictingIDs: resp.ConflictingIDs(),
		Results:        results,
	}
}
