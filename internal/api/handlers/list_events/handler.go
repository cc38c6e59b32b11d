package list_events

import (
	"errors"
	"net/http"
	"time"

	"github.com/calendrio/calendar-backend/internal/api/handlers"
	"github.com/calendrio/calendar-backend/internal/domain"
	listEvents "github.com/calendrio/calendar-backend/internal/usecase/list_events"
)

type Handler struct {
	useCase ListEventsUseCase
	logger  Logger
}

func NewHandler(useCase ListEventsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /events/list
// Query params: startDate, endDate (required, YYYY-MM-DD, endDate >= startDate)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	if details := validateQuery(startDate, endDate); len(details) > 0 {
		h.logger.Warn("GET /events/list - Validation failed: startDate=%q, endDate=%q", startDate, endDate)
		handlers.RespondValidationError(w, details)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listEvents.Request{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, listEvents.ErrInvalidInput):
			h.logger.Warn("GET /events/list - Invalid input: %v", err)
			handlers.RespondValidationError(w, []handlers.FieldError{
				{Field: "startDate", Message: "startDate and endDate must form a valid range"},
			})

		default:
			h.logger.Error("GET /events/list - Failed to list events: startDate=%s, endDate=%s, error=%v",
				startDate, endDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events/list - %d events returned: startDate=%s, endDate=%s",
		result.Count, startDate, endDate)

	// An empty range responds with a bare array, matching the historical
	// wire contract of this endpoint.
	if result.Count == 0 {
		handlers.RespondSuccess(w, http.StatusOK, []BookedEvent{})
		return
	}

	handlers.RespondSuccess(w, http.StatusOK, FromUseCaseResponse(result))
}

func validateQuery(startDate, endDate string) []handlers.FieldError {
	var details []handlers.FieldError

	start, err := time.Parse(domain.DateFormat, startDate)
	switch {
	case startDate == "":
		details = append(details, handlers.FieldError{
			Field: "startDate", Message: "startDate is required",
		})
	case err != nil:
		details = append(details, handlers.FieldError{
			Field: "startDate", Message: "startDate must be in YYYY-MM-DD format",
		})
	}

	end, err := time.Parse(domain.DateFormat, endDate)
	switch {
	case endDate == "":
		details = append(details, handlers.FieldError{
			Field: "endDate", Message: "endDate is required",
		})
	case err != nil:
		details = append(details, handlers.FieldError{
			Field: "endDate", Message: "endDate must be in YYYY-MM-DD format",
		})
	case len(details) == 0 && end.Before(start):
		details = append(details, handlers.FieldError{
			Field: "endDate", Message: "endDate must be after or equal to startDate",
		})
	}

	return details
}
