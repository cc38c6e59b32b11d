package book_slot

import (
	"errors"
	"net/http"

	"github.com/calendrio/calendar-backend/internal/api/handlers"
	bookSlot "github.com/calendrio/calendar-backend/internal/usecase/book_slot"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /events/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := req.Validate(); len(details) > 0 {
		h.logger.Warn("POST /events/booking - Validation failed: slotTime=%q, duration=%d",
			req.SlotTime, req.Duration)
		handlers.RespondValidationError(w, details)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /events/booking - Failed to parse slotTime: %v", err)
		handlers.RespondValidationError(w, []handlers.FieldError{
			{Field: "slotTime", Message: "slotTime must be a valid ISO 8601 date"},
		})
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /events/booking - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /events/booking - Failed to book slot: slotTime=%s, duration=%d, error=%v",
				req.SlotTime, req.Duration, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if !result.BookingSuccess {
		h.logger.Warn("POST /events/booking - Booking rejected: slotTime=%s, code=%s",
			req.SlotTime, result.ErrorCode)
		handlers.RespondFailure(w, http.StatusUnprocessableEntity, response)
		return
	}

	h.logger.Info("POST /events/booking - Slot booked: slotTime=%s, duration=%d, event_id=%s",
		req.SlotTime, req.Duration, result.EventID)
	handlers.RespondSuccess(w, http.StatusOK, response)
}
