package generate_slots

import (
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
)

// generateSlots обходит рабочий день и собирает слоты, на которые свободно
// не менее requiredCount гидроциклов.
//
// Шаг курсора асимметричный:
//   - слот подошел: курсор прыгает на ceil(duration/granularity) шагов вперед,
//     т.е. за конец только что выданного окна - чтобы не выдавать десятки
//     почти одинаковых пересекающихся предложений;
//   - слот не подошел: курсор двигается на один шаг granularity (мелкий перебор).
//
// Слоты целиком лежат внутри [opening, closing]; последний возможный старт -
// closing - duration.
func generateSlots(
	schedule domain.ScheduleConfig,
	durationMinutes int,
	requiredCount int,
	jetSkis []*domain.JetSki,
	reservations []*domain.Reservation,
) ([]Slot, error) {
	slots := make([]Slot, 0)

	granularity := schedule.SlotGranularityMinutes
	jumpSteps := (durationMinutes + granularity - 1) / granularity

	busy := buildBusyIndex(reservations)

	cursor := schedule.OpeningTime

	for !cursor.IsAfter(schedule.ClosingTime) {
		slotEnd, err := cursor.AddMinutes(durationMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(schedule.ClosingTime) {
			break
		}

		window := domain.Interval{Start: cursor, End: slotEnd}

		freeCount, err := countFreeJetSkis(window, schedule.BufferMinutes, jetSkis, busy)
		if err != nil {
			return nil, err
		}

		if freeCount >= requiredCount {
			slots = append(slots, Slot{
				StartTime: cursor,
				EndTime:   slotEnd,
				FreeCount: freeCount,
			})
			cursor, err = cursor.AddMinutes(jumpSteps * granularity)
		} else {
			cursor, err = cursor.AddMinutes(granularity)
		}
		if err != nil {
			break
		}
	}

	return slots, nil
}

// countFreeJetSkis подсчитывает гидроциклы без пересекающихся броней на окно.
// Окно расширяется операционным буфером с обеих сторон - между арендами
// нужно время на возврат и подготовку юнита.
func countFreeJetSkis(
	window domain.Interval,
	bufferMinutes int,
	jetSkis []*domain.JetSki,
	busy map[int64][]domain.Interval,
) (int, error) {
	padded, err := window.Padded(bufferMinutes)
	if err != nil {
		return 0, err
	}

	count := 0

	for _, js := range jetSkis {
		if isFree(padded, busy[js.ID]) {
			count++
		}
	}

	return count, nil
}

func isFree(window domain.Interval, intervals []domain.Interval) bool {
	for _, existing := range intervals {
		if window.Overlaps(existing) {
			return false
		}
	}
	return true
}

// buildBusyIndex строит индекс занятости: гидроцикл -> интервалы его броней
func buildBusyIndex(reservations []*domain.Reservation) map[int64][]domain.Interval {
	busy := make(map[int64][]domain.Interval)

	for _, res := range reservations {
		interval, err := res.Interval()
		if err != nil {
			// Невалидная запись - блокируем её гидроциклы на весь день
			interval = domain.Interval{Start: "00:00", End: "24:00"}
		}
		for _, jetSkiID := range res.JetSkiIDs {
			busy[jetSkiID] = append(busy[jetSkiID], interval)
		}
	}

	return busy
}
