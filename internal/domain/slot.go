package domain

import "time"

// FreeSlot is a candidate bookable time window of the configured duration.
// Slots are derived per request and never persisted.
type FreeSlot struct {
	StartingTime        time.Time
	StartingDisplayTime string
}

// FormatDisplayTime renders an instant in the given zone using the
// human-readable slot format (DD/MM/YYYY, HH:MM).
func FormatDisplayTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DisplayTimeFormat)
}
