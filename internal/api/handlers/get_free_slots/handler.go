package get_free_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/calendrio/calendar-backend/internal/api/handlers"
	"github.com/calendrio/calendar-backend/internal/domain"
	getFreeSlots "github.com/calendrio/calendar-backend/internal/usecase/get_free_slots"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /events/free-slots
// Query params: slotTime (required, YYYY-MM-DD), timezone (optional IANA name)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotTime := r.URL.Query().Get("slotTime")
	timezone := r.URL.Query().Get("timezone")

	if details := validateQuery(slotTime); len(details) > 0 {
		h.logger.Warn("GET /events/free-slots - Validation failed: slotTime=%q", slotTime)
		handlers.RespondValidationError(w, details)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFreeSlots.Request{
		Day:      slotTime,
		Timezone: timezone,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrInvalidTimezone):
			h.logger.Warn("GET /events/free-slots - Invalid timezone: %q", timezone)
			handlers.RespondValidationError(w, []handlers.FieldError{
				{Field: "timezone", Message: "Invalid timezone"},
			})

		case errors.Is(err, getFreeSlots.ErrInvalidInput):
			h.logger.Warn("GET /events/free-slots - Invalid input: %v", err)
			handlers.RespondValidationError(w, []handlers.FieldError{
				{Field: "slotTime", Message: "slotTime must be a valid YYYY-MM-DD date"},
			})

		default:
			h.logger.Error("GET /events/free-slots - Failed to get free slots: slotTime=%s, error=%v", slotTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /events/free-slots - %d slots returned: slotTime=%s, timezone=%s",
		len(result.Slots), slotTime, timezone)
	handlers.RespondSuccess(w, http.StatusOK, FromUseCaseResponse(result))
}

func validateQuery(slotTime string) []handlers.FieldError {
	var details []handlers.FieldError

	if slotTime == "" {
		details = append(details, handlers.FieldError{
			Field: "slotTime", Message: "slotTime is required",
		})
	} else if _, err := time.Parse(domain.DateFormat, slotTime); err != nil {
		details = append(details, handlers.FieldError{
			Field: "slotTime", Message: "slotTime must be in YYYY-MM-DD format",
		})
	}

	return details
}
