package domain

import "time"

// JetSkiStatus represents the operational status of a jet-ski
type JetSkiStatus string

const (
	JetSkiAvailable    JetSkiStatus = "AVAILABLE"
	JetSkiNotAvailable JetSkiStatus = "NOT_AVAILABLE"
	JetSkiNotInFleet   JetSkiStatus = "NOT_IN_FLEET"
)

// JetSki represents a single bookable unit of the fleet
type JetSki struct {
	ID           int64
	Name         string
	Registration string
	LocationID   *int64 // NULL = не приписан к локации
	Status       JetSkiStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBookable returns true if the jet-ski can take new reservations
func (j *JetSki) IsBookable() bool {
	return j.Status == JetSkiAvailable
}

// ValidJetSkiStatus проверяет, что статус является допустимым значением
func ValidJetSkiStatus(s JetSkiStatus) bool {
	switch s {
	case JetSkiAvailable, JetSkiNotAvailable, JetSkiNotInFleet:
		return true
	default:
		return false
	}
}

// JetSkiFilter фильтр для выборки гидроциклов
type JetSkiFilter struct {
	LocationID *int64        // Фильтр по локации (опционально)
	Status     *JetSkiStatus // Фильтр по статусу (опционально)
}
