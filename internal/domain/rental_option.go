package domain

import "time"

// RentalOptionType represents the category of a rental option
type RentalOptionType string

const (
	OptionRegular RentalOptionType = "REGULAR"
	OptionSafari  RentalOptionType = "SAFARI"
)

// RentalOption represents a named duration/price template a reservation is based on
type RentalOption struct {
	ID              int64
	Type            RentalOptionType
	Name            string
	DurationMinutes int
	Price           float64
	IsAvailable     bool // soft delete: false скрывает опцию от новых броней, история сохраняется
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MinJetSkis returns the minimum number of jet-skis a reservation
// based on this option must claim (SAFARI rides go out in groups).
func (o *RentalOption) MinJetSkis() int {
	if o.Type == OptionSafari {
		return MinJetSkisSafari
	}
	return MinJetSkisRegular
}

// ValidRentalOptionType проверяет, что тип является допустимым значением
func ValidRentalOptionType(t RentalOptionType) bool {
	return t == OptionRegular || t == OptionSafari
}
