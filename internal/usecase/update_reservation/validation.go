package update_reservation

import (
	"fmt"
	"strings"

	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса до любого обращения к БД
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationId must be positive", ErrInvalidInput)
	}

	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationId must be positive", ErrInvalidInput)
	}

	if req.RentalOptionID <= 0 {
		return fmt.Errorf("%w: rentalOptionId must be positive", ErrInvalidInput)
	}

	if req.ReservationDate.IsZero() {
		return fmt.Errorf("%w: reservationDate is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if len(req.JetSkiIDs) == 0 {
		return fmt.Errorf("%w: jetSkiIds must not be empty", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.JetSkiIDs))
	for _, id := range req.JetSkiIDs {
		if id <= 0 {
			return fmt.Errorf("%w: jetski id must be positive, got %d", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate jetski id %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if strings.TrimSpace(req.OwnerName) == "" {
		return fmt.Errorf("%w: ownerName is required", ErrInvalidInput)
	}
	if len(req.OwnerName) > domain.MaxOwnerNameLength {
		return fmt.Errorf("%w: ownerName must not exceed %d characters", ErrInvalidInput, domain.MaxOwnerNameLength)
	}

	if strings.TrimSpace(req.OwnerPhone) == "" {
		return fmt.Errorf("%w: ownerPhone is required", ErrInvalidInput)
	}
	if len(req.OwnerPhone) > domain.MaxOwnerPhoneLength {
		return fmt.Errorf("%w: ownerPhone must not exceed %d characters", ErrInvalidInput, domain.MaxOwnerPhoneLength)
	}

	return nil
}
