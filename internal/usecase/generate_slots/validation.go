package generate_slots

import (
	"fmt"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса до любого обращения к БД
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes > domain.MaxRentalDurationMinutes {
		return fmt.Errorf("%w: duration must not exceed %d minutes", ErrInvalidInput, domain.MaxRentalDurationMinutes)
	}

	if req.RequiredCount < 1 {
		return fmt.Errorf("%w: required count must be at least 1", ErrInvalidInput)
	}

	if req.LocationID != nil && *req.LocationID <= 0 {
		return fmt.Errorf("%w: locationId must be positive", ErrInvalidInput)
	}

	return nil
}
