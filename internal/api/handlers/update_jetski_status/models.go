package update_jetski_status

// UpdateJetSkiStatusRequest HTTP request model
type UpdateJetSkiStatusRequest struct {
	Status string `json:"status"` // AVAILABLE | NOT_AVAILABLE | NOT_IN_FLEET
}
