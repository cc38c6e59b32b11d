package domain

import "time"

// Schedule holds the working-hours configuration shared by the read path
// (slot generation) and the write path (booking validation).
type Schedule struct {
	StartHour       int
	EndHour         int
	DurationMinutes int
	DefaultZone     *time.Location
}

// WorkingWindow is the absolute [Start, End) span within which slots and
// bookings are permitted on one calendar day.
type WorkingWindow struct {
	Start time.Time
	End   time.Time
}

// WindowFor computes the working window for the calendar day of `day`,
// anchored in the given zone. Only the year/month/day of `day` are used.
func (s Schedule) WindowFor(day time.Time, loc *time.Location) WorkingWindow {
	y, m, d := day.Date()
	return WorkingWindow{
		Start: time.Date(y, m, d, s.StartHour, 0, 0, 0, loc),
		End:   time.Date(y, m, d, s.EndHour, 0, 0, 0, loc),
	}
}

// SlotStep returns the slot duration as a time.Duration.
func (s Schedule) SlotStep() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// Contains reports whether t is a permitted start instant: at or after the
// window start and strictly before the window end.
func (w WorkingWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
