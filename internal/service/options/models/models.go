package models

import (
	"time"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
)

// Request модели

// SetAvailabilityRequest запрос на скрытие/восстановление опции аренды
type SetAvailabilityRequest struct {
	UserID      int64 `json:"userId"`
	IsAvailable bool  `json:"isAvailable"`
}

// Response модели

// RentalOptionResponse ответ с данными опции аренды
type RentalOptionResponse struct {
	ID              int64   `json:"id"`
	Type            string  `json:"type"` // REGULAR | SAFARI
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	MinJetSkis      int     `json:"minJetSkis"`
	IsAvailable     bool    `json:"isAvailable"`
	CreatedAt       string  `json:"createdAt"`
}

// RentalOptionListResponse ответ со списком опций аренды
type RentalOptionListResponse struct {
	Options []*RentalOptionResponse `json:"options"`
	Total   int                     `json:"total"`
}

// FromDomainRentalOption конвертирует domain модель в response
func FromDomainRentalOption(opt *domain.RentalOption) *RentalOptionResponse {
	return &RentalOptionResponse{
		ID:              opt.ID,
		Type:            string(opt.Type),
		Name:            opt.Name,
		DurationMinutes: opt.DurationMinutes,
		Price:           opt.Price,
		MinJetSkis:      opt.MinJetSkis(),
		IsAvailable:     opt.IsAvailable,
		CreatedAt:       opt.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainRentalOptionList конвертирует список domain моделей в response
func FromDomainRentalOptionList(options []*domain.RentalOption) *RentalOptionListResponse {
	items := make([]*RentalOptionResponse, 0, len(options))
	for _, opt := range options {
		items = append(items, FromDomainRentalOption(opt))
	}

	return &RentalOptionListResponse{
		Options: items,
		Total:   len(items),
	}
}
