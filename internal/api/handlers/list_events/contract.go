package list_events

import (
	"context"

	listEvents "github.com/calendrio/calendar-backend/internal/usecase/list_events"
)

type ListEventsUseCase interface {
	Execute(ctx context.Context, req *listEvents.Request) (*listEvents.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
