package book_slot

import "time"

// Request describes one booking attempt.
type Request struct {
	SlotTime        time.Time // requested start instant
	DurationMinutes int
}

// Response is the typed outcome of a booking attempt. Conflicts are carried
// here as data; an error return is reserved for store or infrastructure
// failures.
type Response struct {
	BookingSuccess bool
	ErrorCode      string // stable conflict code, empty on success
	Message        string
	EventID        string // id of the created event, empty on rejection
}
