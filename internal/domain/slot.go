package domain

import "github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/types"

// AvailableSlot represents a candidate time window offered for booking
type AvailableSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	FreeCount int // Free AVAILABLE-status jet-skis during the window
}

// Satisfies returns true if the slot has at least required free units
func (s *AvailableSlot) Satisfies(required int) bool {
	return s.FreeCount >= required
}
