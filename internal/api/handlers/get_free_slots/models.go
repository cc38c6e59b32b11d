package get_free_slots

import (
	"time"

	getFreeSlots "github.com/calendrio/calendar-backend/internal/usecase/get_free_slots"
)

// FreeSlot is the wire shape of one free slot.
type FreeSlot struct {
	StartingTime        string `json:"startingTime"`
	StartingDisplayTime string `json:"startingDisplayTime"`
}

// FromUseCaseResponse converts the use case response to the wire shape.
func FromUseCaseResponse(resp *getFreeSlots.Response) []FreeSlot {
	slots := make([]FreeSlot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = FreeSlot{
			StartingTime:        s.StartingTime.UTC().Format(time.RFC3339),
			StartingDisplayTime: s.StartingDisplayTime,
		}
	}
	return slots
}
