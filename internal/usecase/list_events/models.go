package list_events

import "time"

// Request selects booked events by date range. Both bounds are calendar
// dates; events starting in [StartDate 00:00 UTC, EndDate 00:00 UTC) match.
type Request struct {
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// Response carries the matching events and their count.
type Response struct {
	Events []Event
	Count  int
}

// Event is one booked interval.
type Event struct {
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
}
