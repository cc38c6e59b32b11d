package get_free_slots

import (
	"time"

	"github.com/calendrio/calendar-backend/internal/domain"
)

// freeSlots walks candidate starts from the window start in fixed steps and
// emits the candidates that do not overlap any booked event. The walk is a
// pure function of its inputs: re-running it over the same window and event
// list yields the same slots.
//
// events must be sorted ascending by start time. A single pointer advances
// alongside the cursor (merge scan); events that ended at or before the
// cursor can never overlap a later candidate and are dropped for good.
//
// Overlap uses strict inequalities, matching the booking-side conflict
// rules: an event ending exactly when a candidate starts (or starting
// exactly when it ends) does not occupy the candidate. Bookings that are
// not aligned to the generation grid therefore still suppress every
// candidate they intersect.
func freeSlots(window domain.WorkingWindow, step time.Duration, events []*domain.BookedEvent, loc *time.Location) []Slot {
	slots := make([]Slot, 0)

	i := 0
	for cursor := window.Start; cursor.Before(window.End); cursor = cursor.Add(step) {
		cursorEnd := cursor.Add(step)

		for i < len(events) && !events[i].EndTime.After(cursor) {
			i++
		}

		occupied := false
		for j := i; j < len(events) && events[j].StartTime.Before(cursorEnd); j++ {
			if events[j].Overlaps(cursor, cursorEnd) {
				occupied = true
				break
			}
		}

		if !occupied {
			slots = append(slots, Slot{
				StartingTime:        cursor,
				StartingDisplayTime: domain.FormatDisplayTime(cursor, loc),
			})
		}
	}

	return slots
}
