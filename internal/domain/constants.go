package domain

// Default configuration values
const (
	DefaultAvailabilityLimit = 3
	MaxAvailabilityLimit     = 20
	DefaultCountryCode       = "39"
	PolicyPrefixLength       = 4
)

// Business validation constants
const (
	MaxSlotCapacity    = 1000
	MaxQueueNameLength = 100
	MaxUserNameLength  = 200
	MaxUserInfoLength  = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
