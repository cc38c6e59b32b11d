package get_free_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/calendrio/calendar-backend/internal/domain"
)

// UseCase enumerates the free slots of one working day. It is read-only and
// advisory: availability is re-validated inside the booking transaction.
type UseCase struct {
	eventRepo EventRepository
	schedule  domain.Schedule
	logger    Logger
}

func NewUseCase(eventRepo EventRepository, schedule domain.Schedule, logger Logger) *UseCase {
	return &UseCase{
		eventRepo: eventRepo,
		schedule:  schedule,
		logger:    logger,
	}
}

// Execute computes the working window for the requested day and zone,
// fetches the events starting inside it, and merges the two into the list
// of free slots.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: day=%s, timezone=%s", req.Day, req.Timezone)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreeSlots: validation failed: %v", err)
		return nil, err
	}

	loc, err := uc.resolveZone(req.Timezone)
	if err != nil {
		uc.logger.Warn("GetFreeSlots: %v", err)
		return nil, err
	}

	day, err := time.Parse(domain.DateFormat, req.Day)
	if err != nil {
		return nil, fmt.Errorf("%w: day must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	window := uc.schedule.WindowFor(day, loc)

	events, err := uc.eventRepo.GetStartingInRange(ctx, window.Start, window.End)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get booked events: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked events: %v", ErrInternal, err)
	}

	slots := freeSlots(window, uc.schedule.SlotStep(), events, loc)

	uc.logger.Info("GetFreeSlots: day=%s, %d booked events, %d free slots",
		req.Day, len(events), len(slots))

	return &Response{Slots: slots}, nil
}

func (uc *UseCase) resolveZone(name string) (*time.Location, error) {
	if name == "" {
		return uc.schedule.DefaultZone, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return loc, nil
}
