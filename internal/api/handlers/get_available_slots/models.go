package get_available_slots

import (
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
	generateSlots "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/usecase/generate_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	FreeCount int    `json:"freeCount"`
}

// AvailableSlotsResponse HTTP модель ответа со списком слотов
type AvailableSlotsResponse struct {
	Date            string         `json:"date"` // "2026-07-15"
	DurationMinutes int            `json:"durationMinutes"`
	RequiredCount   int            `json:"requiredCount"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			FreeCount: slot.FreeCount,
		})
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		RequiredCount:   resp.RequiredCount,
		Slots:           slots,
	}
}
