package domain

// Business validation constants
const (
	MinDurationMinutes  = 15
	MaxDurationMinutes  = 480 // 8 hours
	DurationStepMinutes = 15
)

// Time format constants
const (
	DateFormat        = "2006-01-02"       // YYYY-MM-DD
	DisplayTimeFormat = "02/01/2006, 15:04" // DD/MM/YYYY, HH:MM (24h)
)
