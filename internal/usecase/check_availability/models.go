package check_availability

import (
	"time"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

// Request модель запроса на проверку доступности гидроциклов
type Request struct {
	Date                 time.Time        // Дата брони (без времени)
	StartTime            types.TimeString // Начало интервала (например, "10:00")
	EndTime              types.TimeString // Конец интервала (полуоткрытый: [start, end))
	JetSkiIDs            []int64          // Гидроциклы, доступность которых проверяется
	ExcludeReservationID *int64           // Бронь, исключаемая из проверки (self-exclusion при редактировании)
}

// Response модель ответа с доступностью по каждому гидроциклу
type Response struct {
	Results []JetSkiAvailability // Результат в порядке запрошенных гидроциклов
}

// JetSkiAvailability доступность одного гидроцикла на запрошенный интервал
type JetSkiAvailability struct {
	JetSkiID  int64
	Available bool
}

// AllAvailable возвращает true, если свободны ВСЕ запрошенные гидроциклы.
// Бронирование принимается только целиком - частичное бронирование невозможно.
func (r *Response) AllAvailable() bool {
	for _, res := range r.Results {
		if !res.Available {
			return false
		}
	}
	return true
}

// ConflictingIDs возвращает список занятых гидроциклов
func (r *Response) ConflictingIDs() []int64 {
	ids := make([]int64, 0)
	for _, res := range r.Results {
		if !res.Available {
			ids = append(ids, res.JetSkiID)
		}
	}
	return ids
}
