package domain

// Default configuration values
const (
	DefaultCleaningFeePercent = 3.0
	DefaultServiceFeePercent  = 2.0
	DefaultScanHorizonDays    = 730 // 2 years
)

// Business validation constants
const (
	MinWindowNights    = 1
	MaxWindowNights    = 90
	MaxScanHorizonDays = 1095 // 3 years
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
