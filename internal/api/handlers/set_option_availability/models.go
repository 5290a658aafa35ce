package set_option_availability

// SetAvailabilityRequest HTTP request model
type SetAvailabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}
