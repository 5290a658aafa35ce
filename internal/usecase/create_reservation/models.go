package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	LocationID      int64            // Локация, из которой выдаются гидроциклы
	RentalOptionID  int64            // Опция аренды (задает длительность и цену)
	ReservationDate time.Time        // Дата брони (без времени)
	StartTime       types.TimeString // Время начала аренды (например, "10:00")
	JetSkiIDs       []int64          // Занимаемые гидроциклы (all-or-nothing)
	OwnerName       string           // Имя клиента
	OwnerPhone      string           // Телефон клиента
}

// Response модель ответа с данными созданной брони
type Response struct {
	ID              int64            // Внутренний идентификатор брони
	Reference       uuid.UUID        // Публичный код брони для клиента
	LocationID      int64            // Локация брони
	RentalOptionID  int64            // Опция аренды
	OptionName      string           // Название опции на момент брони
	ReservationDate time.Time        // Дата брони
	StartTime       types.TimeString // Время начала аренды
	EndTime         types.TimeString // Время конца аренды (start + duration)
	DurationMinutes int              // Длительность аренды в минутах
	JetSkiIDs       []int64          // Занятые гидроциклы
	OwnerName       string           // Имя клиента
	OwnerPhone      string           // Телефон клиента
	TotalPrice      float64          // Итоговая цена: цена опции за юнит * количество
	CreatedAt       time.Time        // Время создания брони
}
