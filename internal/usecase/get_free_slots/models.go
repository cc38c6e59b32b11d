package get_free_slots

import "time"

// Request describes one free-slots lookup.
type Request struct {
	Day      string // calendar date, YYYY-MM-DD
	Timezone string // IANA zone name; empty means the configured default
}

// Response carries the generated slots, ordered ascending by starting time.
type Response struct {
	Slots []Slot
}

// Slot is a free candidate window: the machine-readable instant plus a
// display string localized to the requested zone.
type Slot struct {
	StartingTime        time.Time
	StartingDisplayTime string
}
