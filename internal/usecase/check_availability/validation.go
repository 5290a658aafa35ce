package check_availability

import "fmt"

// validateRequest валидирует входные данные запроса.
// Прошедшее время начала здесь не проверяется - этим занимается
// валидация создания/редактирования брони до вызова проверки.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	// Интервал полуоткрытый [start, end): конец должен быть строго позже начала
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if len(req.JetSkiIDs) == 0 {
		return fmt.Errorf("%w: at least one jetski is required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.JetSkiIDs))
	for _, id := range req.JetSkiIDs {
		if id <= 0 {
			return fmt.Errorf("%w: jetski ID must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate jetski ID %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if req.ExcludeReservationID != nil && *req.ExcludeReservationID <= 0 {
		return fmt.Errorf("%w: excludeReservationId must be positive", ErrInvalidInput)
	}

	return nil
}
