package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

// Reservation represents a booked interval claiming one or more jet-skis
type Reservation struct {
	ID              int64
	Reference       uuid.UUID // публичный код брони для клиента
	LocationID      int64
	RentalOptionID  int64
	ReservationDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	JetSkiIDs       []int64

	// Running-state flags
	IsCurrentlyRunning bool
	HasFinished        bool

	// Denormalized data for history
	OptionName string
	OwnerName  string
	OwnerPhone string
	TotalPrice float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval возвращает временной интервал брони [start, end)
func (r *Reservation) Interval() (Interval, error) {
	return NewInterval(r.StartTime, r.DurationMinutes)
}

// CanBeEdited returns true if the reservation's window, jet-skis or
// location may still be changed
func (r *Reservation) CanBeEdited() bool {
	return !r.IsCurrentlyRunning && !r.HasFinished
}

// CanBeStarted returns true if the rental can transition to running
func (r *Reservation) CanBeStarted() bool {
	return !r.IsCurrentlyRunning && !r.HasFinished
}

// CanBeFinished returns true if the rental can transition to finished
func (r *Reservation) CanBeFinished() bool {
	return r.IsCurrentlyRunning && !r.HasFinished
}

// CanBeDeleted returns true if the reservation may be removed.
// A running rental must be finished first.
func (r *Reservation) CanBeDeleted() bool {
	return !r.IsCurrentlyRunning
}

// ClaimsJetSki проверяет, что бронь занимает указанный гидроцикл
func (r *Reservation) ClaimsJetSki(jetSkiID int64) bool {
	for _, id := range r.JetSkiIDs {
		if id == jetSkiID {
			return true
		}
	}
	return false
}

// LocationReservationsFilter фильтр для получения броней локации
type LocationReservationsFilter struct {
	LocationID      int64      // Обязательный параметр
	Date            *time.Time // Фильтр по дате (опционально)
	JetSkiID        *int64     // Только брони, занимающие гидроцикл (опционально)
	ExcludeID       *int64     // Исключить бронь (self-exclusion при редактировании)
	IncludeFinished bool       // Включать ли завершенные брони
}

// JetSkiReservationsFilter фильтр для получения броней гидроцикла
type JetSkiReservationsFilter struct {
	JetSkiID  int64      // Обязательный параметр
	Date      *time.Time // Фильтр по дате (опционально)
	ExcludeID *int64     // Исключить бронь (self-exclusion при редактировании)
}
