package get_free_slots

import (
	"context"
	"time"

	"github.com/calendrio/calendar-backend/internal/domain"
)

// EventRepository is the slice of the storage layer the read path needs.
type EventRepository interface {
	// GetStartingInRange returns events starting in [from, to), ordered
	// ascending by start time.
	GetStartingInRange(ctx context.Context, from, to time.Time) ([]*domain.BookedEvent, error)
}

// Logger is the logging surface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
