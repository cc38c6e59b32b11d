package book_slot

import (
	"fmt"

	"github.com/calendrio/calendar-backend/internal/domain"
)

func validateRequest(req *Request) error {
	if req.SlotTime.IsZero() {
		return fmt.Errorf("%w: slotTime is required", ErrInvalidInput)
	}

	d := req.DurationMinutes
	switch {
	case d < domain.MinDurationMinutes:
		return fmt.Errorf("%w: duration must be at least %d minutes", ErrInvalidInput, domain.MinDurationMinutes)
	case d > domain.MaxDurationMinutes:
		return fmt.Errorf("%w: duration cannot exceed %d minutes", ErrInvalidInput, domain.MaxDurationMinutes)
	case d%domain.DurationStepMinutes != 0:
		return fmt.Errorf("%w: duration must be a multiple of %d", ErrInvalidInput, domain.DurationStepMinutes)
	}

	return nil
}
