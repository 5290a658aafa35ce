package models

import (
	"errors"
	"time"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе гидроцикла
	ErrInvalidStatus = errors.New("invalid jetski status")
)

// Request модели

// ListJetSkisRequest запрос на получение списка гидроциклов
type ListJetSkisRequest struct {
	LocationID *int64  `json:"locationId,omitempty"` // Фильтр по локации (опционально)
	Status     *string `json:"status,omitempty"`     // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListJetSkisRequest) ToDomainFilter() (domain.JetSkiFilter, error) {
	filter := domain.JetSkiFilter{
		LocationID: r.LocationID,
	}

	if r.Status != nil {
		status := domain.JetSkiStatus(*r.Status)
		if !domain.ValidJetSkiStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateJetSkiStatusRequest запрос на смену статуса гидроцикла
type UpdateJetSkiStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// Response модели

// JetSkiResponse ответ с данными гидроцикла
type JetSkiResponse struct {
	ID           int64  `json:"id"`
	LocationID   *int64 `json:"locationId,omitempty"` // NULL = не приписан к локации
	Name         string `json:"name"`
	Registration string `json:"registration"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// JetSkiListResponse ответ со списком гидроциклов
type JetSkiListResponse struct {
	JetSkis []*JetSkiResponse `json:"jetSkis"`
	Total   int               `json:"total"`
}

// LocationResponse ответ с данными локации
type LocationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ManagerID *int64 `json:"managerId,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// LocationListResponse ответ со списком локаций
type LocationListResponse struct {
	Locations []*LocationResponse `json:"locations"`
	Total     int                 `json:"total"`
}

// FromDomainJetSki конвертирует domain модель в response
func FromDomainJetSki(js *domain.JetSki) *JetSkiResponse {
	return &JetSkiResponse{
		ID:           js.ID,
		LocationID:   js.LocationID,
		Name:         js.Name,
		Registration: js.Registration,
		Status:       string(js.Status),
		CreatedAt:    js.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    js.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainJetSkiList конвертирует список domain моделей в response
func FromDomainJetSkiList(jetSkis []*domain.JetSki) *JetSkiListResponse {
	items := make([]*JetSkiResponse, 0, len(jetSkis))
	for _, js := range jetSkis {
		items = append(items, FromDomainJetSki(js))
	}

	return &JetSkiListResponse{
		JetSkis: items,
		Total:   len(items),
	}
}

// FromDomainLocation конвертирует domain модель в response
func FromDomainLocation(loc *domain.Location) *LocationResponse {
	return &LocationResponse{
		ID:        loc.ID,
		Name:      loc.Name,
		ManagerID: loc.ManagerID,
		CreatedAt: loc.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainLocationList конвертирует список domain моделей в response
func FromDomainLocationList(locations []*domain.Location) *LocationListResponse {
	items := make([]*LocationResponse, 0, len(locations))
	for _, loc := range locations {
		items = append(items, FromDomainLocation(loc))
	}

	return &LocationListResponse{
		Locations: items,
		Total:     len(items),
	}
}
