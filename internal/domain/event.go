package domain

import "time"

// BookedEvent represents a persisted booking in the calendar.
// Events are immutable once created: there is no update or cancel flow,
// and EndTime is always StartTime plus DurationMinutes.
type BookedEvent struct {
	ID              string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	CreatedAt       time.Time
}

// Overlaps reports whether the event intersects the [start, end) interval.
// Touching boundaries (an event ending exactly at start, or starting exactly
// at end) do not count as an overlap.
func (e *BookedEvent) Overlaps(start, end time.Time) bool {
	return e.StartTime.Before(end) && e.EndTime.After(start)
}

// ValidDuration reports whether d is a bookable duration: a positive
// multiple of DurationStepMinutes between the configured bounds.
func ValidDuration(d int) bool {
	return d >= MinDurationMinutes && d <= MaxDurationMinutes && d%DurationStepMinutes == 0
}
