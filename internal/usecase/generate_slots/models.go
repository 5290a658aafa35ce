package generate_slots

import (
	"time"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date            time.Time // Дата, на которую запрашиваются слоты (без времени)
	DurationMinutes int       // Желаемая длительность аренды в минутах
	RequiredCount   int       // Минимальное необходимое количество свободных гидроциклов
	LocationID      *int64    // Фильтр по локации (опционально)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	DurationMinutes int       // Длительность слота в минутах
	RequiredCount   int       // Запрошенное количество гидроциклов
	Slots           []Slot    // Список подходящих слотов в хронологическом порядке
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время конца слота (start + duration)
	FreeCount int              // Количество свободных гидроциклов на этот слот
}
