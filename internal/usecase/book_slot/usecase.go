package book_slot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/calendrio/calendar-backend/internal/domain"
)

const msgSlotBooked = "Slot Booked Successfully"

// UseCase books a slot: working-hours check, then an atomic
// read-validate-insert against the event store.
type UseCase struct {
	eventRepo EventRepository
	txManager TransactionManager
	schedule  domain.Schedule
	logger    Logger
}

func NewUseCase(eventRepo EventRepository, txManager TransactionManager, schedule domain.Schedule, logger Logger) *UseCase {
	return &UseCase{
		eventRepo: eventRepo,
		txManager: txManager,
		schedule:  schedule,
		logger:    logger,
	}
}

// Execute attempts to book [SlotTime, SlotTime+Duration). The conflict check
// and the insert run in one serializable transaction, so of two concurrent
// attempts on overlapping intervals exactly one commits.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: slotTime=%s, duration=%d",
		req.SlotTime.Format(time.RFC3339), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	requestedStart := req.SlotTime.UTC()
	requestedEnd := requestedStart.Add(time.Duration(req.DurationMinutes) * time.Minute)

	// The working-hours check depends only on configuration, never on
	// concurrent writes, so it runs before the transaction. The window is
	// anchored to the UTC calendar date of the requested start, expressed
	// in the configured default zone.
	window := uc.schedule.WindowFor(requestedStart, uc.schedule.DefaultZone)
	if !window.Contains(requestedStart) {
		conflict := domain.NewConflict(domain.ConflictOutsideWorkingHours)
		uc.logger.Warn("BookSlot: rejected, %s: slotTime=%s, window=[%s, %s)",
			conflict.Code, requestedStart.Format(time.RFC3339),
			window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))
		return rejected(conflict), nil
	}

	// Any event overlapping the request must start within the maximum
	// bookable duration of it, so this window provably covers every
	// possible conflict.
	lookaround := time.Duration(domain.MaxDurationMinutes) * time.Minute

	var conflict *domain.Conflict
	var created *domain.BookedEvent

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		events, err := uc.eventRepo.GetStartingInRange(txCtx,
			requestedStart.Add(-lookaround), requestedStart.Add(lookaround))
		if err != nil {
			return fmt.Errorf("%w: failed to get booked events: %v", ErrInternal, err)
		}

		conflict = domain.FindConflict(requestedStart, requestedEnd, events)
		if conflict != nil {
			// No write happens; the transaction ends empty and the
			// caller receives a typed rejection.
			return nil
		}

		ev := &domain.BookedEvent{
			ID:              uuid.NewString(),
			StartTime:       requestedStart,
			EndTime:         requestedEnd,
			DurationMinutes: req.DurationMinutes,
		}

		created, err = uc.eventRepo.Create(txCtx, ev)
		if err != nil {
			return fmt.Errorf("%w: failed to create event: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		uc.logger.Error("BookSlot: transaction failed: slotTime=%s, error=%v",
			requestedStart.Format(time.RFC3339), err)
		return nil, err
	}

	if conflict != nil {
		uc.logger.Warn("BookSlot: rejected, %s: slotTime=%s",
			conflict.Code, requestedStart.Format(time.RFC3339))
		return rejected(conflict), nil
	}

	uc.logger.Info("BookSlot: booked event id=%s, start=%s, duration=%d",
		created.ID, created.StartTime.Format(time.RFC3339), created.DurationMinutes)

	return &Response{
		BookingSuccess: true,
		Message:        msgSlotBooked,
		EventID:        created.ID,
	}, nil
}

func rejected(c *domain.Conflict) *Response {
	return &Response{
		BookingSuccess: false,
		ErrorCode:      string(c.Code),
		Message:        c.Message,
	}
}
