package domain

// Default schedule values
const (
	DefaultOpeningTime            = "07:00"
	DefaultClosingTime            = "19:00"
	DefaultBufferMinutes          = 5
	DefaultSlotGranularityMinutes = 5
)

// Business validation constants
const (
	MinRentalDurationMinutes = 5
	MaxRentalDurationMinutes = 480 // 8 hours
	MinSlotGranularity       = 1
	MaxSlotGranularity       = 60
	MinBufferMinutes         = 0
	MaxBufferMinutes         = 60
	MaxOwnerNameLength       = 200
	MaxOwnerPhoneLength      = 50
)

// Minimum jet-ski counts per rental option type
const (
	MinJetSkisRegular = 1
	MinJetSkisSafari  = 2
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
