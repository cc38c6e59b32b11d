package book_slot

import (
	"context"
	"time"

	"github.com/calendrio/calendar-backend/internal/domain"
)

// EventRepository is the storage surface the booking transaction needs:
// the conflict-window read and the insert.
type EventRepository interface {
	GetStartingInRange(ctx context.Context, from, to time.Time) ([]*domain.BookedEvent, error)
	Create(ctx context.Context, ev *domain.BookedEvent) (*domain.BookedEvent, error)
}

// TransactionManager runs fn inside a transaction with isolation strong
// enough that two concurrent bookings of overlapping intervals cannot both
// observe the slot as free.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
