package domain

import "time"

// ConflictCode identifies the reason a requested interval cannot be booked.
// Codes are stable and machine-readable; they appear verbatim in API
// responses.
type ConflictCode string

const (
	ConflictOutsideWorkingHours  ConflictCode = "SLOT_OUTSIDE_WORKING_HRS"
	ConflictAlreadyBooked        ConflictCode = "SLOT_ALREADY_BOOKED"
	ConflictOverlapsExisting     ConflictCode = "SLOT_OVERLAPS_EXISTING_MEETING"
	ConflictOverlapsMeetingStart ConflictCode = "SLOT_OVERLAPS_MEETING_START"
)

var conflictMessages = map[ConflictCode]string{
	ConflictOutsideWorkingHours:  "Requested slot is not within working hours. Please choose a time within working hours.",
	ConflictAlreadyBooked:        "The requested time slot is already booked. Please choose a different time.",
	ConflictOverlapsExisting:     "The requested time slot conflicts with an existing meeting. Please select a non-overlapping time.",
	ConflictOverlapsMeetingStart: "The requested time slot overlaps with the start of a scheduled meeting. Please choose a time that doesn't conflict.",
}

// Conflict describes why a booking was rejected. Conflicts are expected,
// recoverable outcomes and travel as data, never as error control flow.
type Conflict struct {
	Code    ConflictCode
	Message string
}

// NewConflict builds a Conflict with the canonical message for code.
func NewConflict(code ConflictCode) *Conflict {
	return &Conflict{Code: code, Message: conflictMessages[code]}
}

// FindConflict checks the requested [requestedStart, requestedEnd) interval
// against booked events. For each event the rules apply in precedence order
// and the first match wins:
//
//  1. equal starts                                  -> SLOT_ALREADY_BOOKED
//  2. requested start strictly inside the event     -> SLOT_OVERLAPS_EXISTING_MEETING
//  3. event start strictly inside the request       -> SLOT_OVERLAPS_MEETING_START
//
// Returns nil when no event matches any rule.
func FindConflict(requestedStart, requestedEnd time.Time, events []*BookedEvent) *Conflict {
	for _, ev := range events {
		switch {
		case requestedStart.Equal(ev.StartTime):
			return NewConflict(ConflictAlreadyBooked)
		case ev.StartTime.Before(requestedStart) && requestedStart.Before(ev.EndTime):
			return NewConflict(ConflictOverlapsExisting)
		case requestedStart.Before(ev.StartTime) && ev.StartTime.Before(requestedEnd):
			return NewConflict(ConflictOverlapsMeetingStart)
		}
	}
	return nil
}
