package book_slot

import (
	"fmt"
	"time"

	"github.com/calendrio/calendar-backend/internal/api/handlers"
	"github.com/calendrio/calendar-backend/internal/domain"
	bookSlot "github.com/calendrio/calendar-backend/internal/usecase/book_slot"
)

// BookSlotRequest is the HTTP request body.
type BookSlotRequest struct {
	SlotTime string `json:"slotTime"` // ISO-8601 instant, e.g. "2024-06-01T09:30:00Z"
	Duration int    `json:"duration"` // minutes
}

// BookingResult is the HTTP response body, identical for accepted and
// rejected bookings apart from the flag and code.
type BookingResult struct {
	IsBookingSuccess bool   `json:"isBookingSuccess"`
	ErrorCode        string `json:"errorCode"`
	Message          string `json:"message"`
}

// Validate reports every failing field, not just the first.
func (r *BookSlotRequest) Validate() []handlers.FieldError {
	var details []handlers.FieldError

	if r.SlotTime == "" {
		details = append(details, handlers.FieldError{
			Field: "slotTime", Message: "slotTime is required",
		})
	} else if _, err := time.Parse(time.RFC3339, r.SlotTime); err != nil {
		details = append(details, handlers.FieldError{
			Field: "slotTime", Message: "slotTime must be a valid ISO 8601 date",
		})
	}

	switch {
	case r.Duration <= 0:
		details = append(details, handlers.FieldError{
			Field: "duration", Message: "duration must be positive",
		})
	case r.Duration < domain.MinDurationMinutes:
		details = append(details, handlers.FieldError{
			Field:   "duration",
			Message: fmt.Sprintf("duration must be at least %d minutes", domain.MinDurationMinutes),
		})
	case r.Duration > domain.MaxDurationMinutes:
		details = append(details, handlers.FieldError{
			Field:   "duration",
			Message: fmt.Sprintf("duration cannot exceed %d minutes (8 hours)", domain.MaxDurationMinutes),
		})
	case r.Duration%domain.DurationStepMinutes != 0:
		details = append(details, handlers.FieldError{
			Field:   "duration",
			Message: fmt.Sprintf("duration must be a multiple of %d", domain.DurationStepMinutes),
		})
	}

	return details
}

// ToUseCaseRequest converts the HTTP request to the use case model.
// Validate must have passed.
func (r *BookSlotRequest) ToUseCaseRequest() (*bookSlot.Request, error) {
	slotTime, err := time.Parse(time.RFC3339, r.SlotTime)
	if err != nil {
		return nil, err
	}

	return &bookSlot.Request{
		SlotTime:        slotTime,
		DurationMinutes: r.Duration,
	}, nil
}

// FromUseCaseResponse converts the use case outcome to the wire shape.
func FromUseCaseResponse(resp *bookSlot.Response) *BookingResult {
	return &BookingResult{
		IsBookingSuccess: resp.BookingSuccess,
		ErrorCode:        resp.ErrorCode,
		Message:          resp.Message,
	}
}
