package list_events

import (
	"time"

	listEvents "github.com/calendrio/calendar-backend/internal/usecase/list_events"
)

// BookedEvent is the wire shape of one booked interval.
type BookedEvent struct {
	BookedStartTime string `json:"bookedStartTime"`
	BookedEndTime   string `json:"bookedEndTime"`
	Duration        int    `json:"duration"`
}

// ListResult pairs the events with their count. An empty range renders as a
// bare JSON array instead, which the handler special-cases.
type ListResult struct {
	Result []BookedEvent `json:"result"`
	Count  int           `json:"count"`
}

// FromUseCaseResponse converts the use case response to the wire shape.
func FromUseCaseResponse(resp *listEvents.Response) *ListResult {
	events := make([]BookedEvent, len(resp.Events))
	for i, ev := range resp.Events {
		events[i] = BookedEvent{
			BookedStartTime: ev.StartTime.UTC().Format(time.RFC3339),
			BookedEndTime:   ev.EndTime.UTC().Format(time.RFC3339),
			Duration:        ev.DurationMinutes,
		}
	}
	return &ListResult{Result: events, Count: resp.Count}
}
