package list_events

import (
	"context"
	"fmt"
	"time"

	"github.com/calendrio/calendar-backend/internal/domain"
)

// UseCase lists booked events in a date range.
type UseCase struct {
	eventRepo EventRepository
	logger    Logger
}

func NewUseCase(eventRepo EventRepository, logger Logger) *UseCase {
	return &UseCase{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// Execute returns the events starting in [StartDate, EndDate), both bounds
// taken at midnight UTC, ordered ascending by start time.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListEvents: startDate=%s, endDate=%s", req.StartDate, req.EndDate)

	from, to, err := parseRange(req)
	if err != nil {
		uc.logger.Warn("ListEvents: validation failed: %v", err)
		return nil, err
	}

	booked, err := uc.eventRepo.GetStartingInRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("ListEvents: failed to get booked events: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked events: %v", ErrInternal, err)
	}

	events := make([]Event, len(booked))
	for i, ev := range booked {
		events[i] = Event{
			StartTime:       ev.StartTime,
			EndTime:         ev.EndTime,
			DurationMinutes: ev.DurationMinutes,
		}
	}

	uc.logger.Info("ListEvents: %d events in [%s, %s)", len(events), req.StartDate, req.EndDate)

	return &Response{Events: events, Count: len(events)}, nil
}

func parseRange(req *Request) (time.Time, time.Time, error) {
	if req.StartDate == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if req.EndDate == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	from, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: startDate must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	to, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: endDate must be after or equal to startDate", ErrInvalidInput)
	}

	return from, to, nil
}
