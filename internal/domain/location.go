package domain

import "time"

// Location represents a rental point on the shore.
// Used as a scoping attribute of jet-skis and reservations and as a
// filter dimension for availability; it has no behavior of its own.
type Location struct {
	ID        int64
	Name      string
	ManagerID *int64 // NULL = локация без закрепленного менеджера
	CreatedAt time.Time
	UpdatedAt time.Time
}
