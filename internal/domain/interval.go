package domain

import (
	"errors"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"
)

// ErrEmptyInterval возвращается для интервалов нулевой или отрицательной длительности
var ErrEmptyInterval = errors.New("interval duration must be positive")

// Interval represents a half-open time window [Start, End) within one day.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewInterval строит интервал из времени начала и длительности
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	if durationMinutes <= 0 {
		return Interval{}, ErrEmptyInterval
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals intersect.
// Strict inequalities: intervals that merely touch at a boundary
// (a.End == b.Start or b.End == a.Start) do NOT overlap.
//
// This is the single overlap definition in the service; every conflict
// check and availability computation goes through it.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.IsBefore(b.End) && b.Start.IsBefore(a.End)
}

// Padded возвращает интервал, расширенный на bufferMinutes с обеих сторон.
// Начало не уходит раньше полуночи, конец не позже "24:00".
// Используется только при подсчете доступности флота (операционный буфер
// между арендами), но не при проверке конфликта конкретной брони.
func (a Interval) Padded(bufferMinutes int) (Interval, error) {
	if bufferMinutes <= 0 {
		return a, nil
	}

	start, err := a.Start.SubMinutes(bufferMinutes)
	if err != nil {
		return Interval{}, err
	}

	end, err := a.End.AddMinutes(bufferMinutes)
	if err != nil {
		// Конец суток - обрезаем до верхней границы
		end = types.TimeString("24:00")
	}

	return Interval{Start: start, End: end}, nil
}
